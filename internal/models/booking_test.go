package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingItem_UnmarshalTransport(t *testing.T) {
	data := `{
		"id": "12109",
		"type": "transport",
		"category": "departure_train",
		"name": "PANCHAVATI EXP",
		"price": 450,
		"details": {"mode": "train", "from": "Mumbai CST", "to": "Nashik Road", "departure": "07:05"},
		"quantity": 1
	}`

	var item BookingItem
	require.NoError(t, json.Unmarshal([]byte(data), &item))

	assert.Equal(t, "12109", item.ID)
	assert.Equal(t, TypeTransport, item.Type)
	require.NotNil(t, item.Details.Transport)
	assert.Equal(t, "Mumbai CST", item.Details.Transport.From)
	assert.Nil(t, item.Details.Accommodation)
	assert.Nil(t, item.Details.Aarti)
}

func TestBookingItem_UnmarshalAarti(t *testing.T) {
	data := `{
		"id": "aarti_ramkund_mangal_aarti",
		"type": "aarti",
		"name": "Ramkund Mangal Aarti",
		"price": 100,
		"details": {"location": "Ramkund Ghat", "time": "5:30 AM", "duration": "45 minutes"},
		"quantity": 2
	}`

	var item BookingItem
	require.NoError(t, json.Unmarshal([]byte(data), &item))

	require.NotNil(t, item.Details.Aarti)
	assert.Equal(t, "Ramkund Ghat", item.Details.Aarti.Location)
	assert.Equal(t, "5:30 AM", item.Details.Aarti.Time)
	assert.Equal(t, 200.0, item.Subtotal())
}

func TestBookingItem_UnmarshalUnknownType(t *testing.T) {
	data := `{"id": "x", "type": "helicopter", "name": "X", "price": 10, "quantity": 1}`

	var item BookingItem
	err := json.Unmarshal([]byte(data), &item)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown booking type "helicopter"`)
}

func TestBookingItem_UnmarshalMissingDetails(t *testing.T) {
	cases := []string{
		`{"id": "x", "type": "transport", "name": "X", "price": 10, "quantity": 1}`,
		`{"id": "x", "type": "transport", "name": "X", "price": 10, "quantity": 1, "details": null}`,
	}

	for _, data := range cases {
		var item BookingItem
		require.NoError(t, json.Unmarshal([]byte(data), &item), data)
		assert.Nil(t, item.Details.Transport)
	}
}

func TestBookingItem_MarshalRoundTrip(t *testing.T) {
	item := BookingItem{
		ID:       "stay_hotel_panchavati",
		Type:     TypeAccommodation,
		Category: "hotel",
		Name:     "Hotel Panchavati",
		Price:    1200,
		Details: BookingDetails{Accommodation: &AccommodationDetails{
			Location: "Panchavati", Distance: "500m", Rating: "4.2",
		}},
		Quantity: 2,
		AddedAt:  time.Date(2027, 8, 15, 6, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded BookingItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, item, decoded)
}

func TestBookingItem_MarshalEmptyDetailsAsObject(t *testing.T) {
	item := BookingItem{ID: "x", Type: TypeTransport, Name: "X", Price: 10, Quantity: 1}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `{}`, string(raw["details"]))
}

func TestDisplayDetails(t *testing.T) {
	cases := []struct {
		name string
		item BookingItem
		want string
	}{
		{
			name: "transport",
			item: BookingItem{Type: TypeTransport, Details: BookingDetails{
				Transport: &TransportDetails{From: "Mumbai CST", To: "Nashik Road", Departure: "07:05"},
			}},
			want: "Mumbai CST → Nashik Road • 07:05",
		},
		{
			name: "accommodation",
			item: BookingItem{Type: TypeAccommodation, Details: BookingDetails{
				Accommodation: &AccommodationDetails{Location: "Panchavati", Distance: "500m"},
			}},
			want: "Panchavati • 500m from Ramkund",
		},
		{
			name: "aarti",
			item: BookingItem{Type: TypeAarti, Details: BookingDetails{
				Aarti: &AartiDetails{Location: "Ramkund Ghat", Time: "5:30 AM"},
			}},
			want: "Ramkund Ghat • 5:30 AM",
		},
		{
			name: "missing variant falls back",
			item: BookingItem{Type: TypeTransport},
			want: "Booking details",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.DisplayDetails())
		})
	}
}

func TestTotals(t *testing.T) {
	items := []BookingItem{
		{ID: "a", Type: TypeTransport, Price: 450, Quantity: 1},
		{ID: "b", Type: TypeAccommodation, Price: 1200, Quantity: 2},
		{ID: "c", Type: TypeAarti, Price: 100, Quantity: 1},
	}

	assert.Equal(t, 2950.0, TotalAmount(items))
	assert.Equal(t, 4, TotalCount(items))
	assert.Equal(t, 0.0, TotalAmount(nil))
	assert.Equal(t, 0, TotalCount(nil))
}
