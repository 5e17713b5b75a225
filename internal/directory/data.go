package directory

import "github.com/umeshpagere/cepl-kumbh-mela/internal/models"

// SampleStations returns the bundled station list used to seed the database
// on first start.
func SampleStations() []models.Station {
	return []models.Station{
		{Code: "NDLS", Name: "New Delhi"},
		{Code: "CSMT", Name: "Mumbai CST"},
		{Code: "PUNE", Name: "Pune Junction"},
		{Code: "MMCT", Name: "Mumbai Central"},
		{Code: "BCT", Name: "Mumbai Bandra Terminus"},
		{Code: "LTT", Name: "Mumbai Lokmanya Tilak Terminus"},
		{Code: "KYN", Name: "Kalyan Junction"},
		{Code: "NK", Name: "Nashik Road"},
		{Code: "BSL", Name: "Bhusaval Junction"},
		{Code: "NAG", Name: "Nagpur"},
		{Code: "HYB", Name: "Hyderabad Deccan"},
		{Code: "MAS", Name: "Chennai Central"},
		{Code: "HWH", Name: "Howrah Junction"},
		{Code: "SBC", Name: "Bangalore City"},
		{Code: "ADI", Name: "Ahmedabad Junction"},
		{Code: "JP", Name: "Jaipur Junction"},
		{Code: "JU", Name: "Jodhpur Junction"},
		{Code: "AGC", Name: "Agra Cantt"},
		{Code: "CNB", Name: "Kanpur Central"},
		{Code: "LKO", Name: "Lucknow"},
	}
}

// SampleTrains returns the bundled timetable. Train numbers repeat where the
// same train serves more than one leg (12109 runs NDLS→NK and CSMT→NK).
func SampleTrains() []models.Train {
	return []models.Train{
		{Number: "12107", Name: "LUCKNOW MAIL", From: "New Delhi", To: "Nashik Road", FromCode: "NDLS", ToCode: "NK", Departure: "22:45", Arrival: "18:30", Duration: "19h 45m", Price: 1850, Availability: "Available", Class: "2A", Days: []string{"Mon", "Wed", "Sat"}},
		{Number: "12109", Name: "PANCHAVATI EXP", From: "New Delhi", To: "Nashik Road", FromCode: "NDLS", ToCode: "NK", Departure: "16:20", Arrival: "12:45", Duration: "20h 25m", Price: 1650, Availability: "Available", Class: "3A", Days: []string{"Daily"}},
		{Number: "12511", Name: "RAPTI SAGAR EXP", From: "New Delhi", To: "Nashik Road", FromCode: "NDLS", ToCode: "NK", Departure: "14:30", Arrival: "10:15", Duration: "19h 45m", Price: 2100, Availability: "Available", Class: "2A", Days: []string{"Tue", "Wed", "Sun"}},
		{Number: "12109", Name: "PANCHAVATI EXP", From: "Mumbai CST", To: "Nashik Road", FromCode: "CSMT", ToCode: "NK", Departure: "07:05", Arrival: "12:45", Duration: "5h 40m", Price: 450, Availability: "Available", Class: "CC", Days: []string{"Daily"}},
		{Number: "12111", Name: "CSMT AMI EXP", From: "Mumbai CST", To: "Nashik Road", FromCode: "CSMT", ToCode: "NK", Departure: "23:45", Arrival: "05:30", Duration: "5h 45m", Price: 380, Availability: "Available", Class: "CC", Days: []string{"Daily"}},
		{Number: "12117", Name: "LTT MANMAD EXP", From: "Mumbai Lokmanya Tilak Terminus", To: "Nashik Road", FromCode: "LTT", ToCode: "NK", Departure: "06:35", Arrival: "12:45", Duration: "6h 10m", Price: 420, Availability: "Available", Class: "CC", Days: []string{"Daily"}},
		{Number: "12129", Name: "AZAD HIND EXP", From: "Pune Junction", To: "Nashik Road", FromCode: "PUNE", ToCode: "NK", Departure: "22:45", Arrival: "01:30", Duration: "2h 45m", Price: 320, Availability: "Available", Class: "2A", Days: []string{"Daily"}},
		{Number: "12135", Name: "PUNE NAGPUR EXP", From: "Pune Junction", To: "Nashik Road", FromCode: "PUNE", ToCode: "NK", Departure: "14:25", Arrival: "17:10", Duration: "2h 45m", Price: 280, Availability: "Available", Class: "CC", Days: []string{"Mon", "Tue", "Wed", "Fri", "Sat"}},
		{Number: "12627", Name: "KARNATAKA EXP", From: "Bangalore City", To: "Nashik Road", FromCode: "SBC", ToCode: "NK", Departure: "22:20", Arrival: "18:30", Duration: "20h 10m", Price: 2450, Availability: "Available", Class: "2A", Days: []string{"Daily"}},
		{Number: "12655", Name: "NAVJEEVAN EXP", From: "Chennai Central", To: "Nashik Road", FromCode: "MAS", ToCode: "NK", Departure: "07:15", Arrival: "03:45", Duration: "20h 30m", Price: 2350, Availability: "Available", Class: "2A", Days: []string{"Daily"}},
		{Number: "12321", Name: "HWH MUMBAI MAIL", From: "Howrah Junction", To: "Nashik Road", FromCode: "HWH", ToCode: "NK", Departure: "19:40", Arrival: "18:30", Duration: "22h 50m", Price: 2650, Availability: "Available", Class: "2A", Days: []string{"Daily"}},
	}
}
