package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/order-management/internal/domain/validation"
)

func orderData() map[string]any {
	return map[string]any{
		"customer_id": float64(7),
		"date":        "2021-03-04 10:15:00.000000",
		"shipped":     false,
	}
}

func TestDeserialize_Valid(t *testing.T) {
	var o Order

	got, err := o.Deserialize(orderData())

	require.NoError(t, err)
	require.Same(t, &o, got)
	require.Equal(t, int64(7), o.CustomerID)
	require.True(t, o.Date.Equal(time.Date(2021, 3, 4, 10, 15, 0, 0, time.UTC)))
	require.False(t, o.Shipped)
	require.False(t, o.IsPersisted())
}

func TestDeserialize_KeepsMicroseconds(t *testing.T) {
	data := orderData()
	data["date"] = "2021-03-04 10:15:00.123456"

	var o Order
	_, err := o.Deserialize(data)

	require.NoError(t, err)
	require.Equal(t, 123456000, o.Date.Nanosecond())
}

func TestDeserialize_MissingField(t *testing.T) {
	for _, field := range []string{"customer_id", "date", "shipped"} {
		t.Run(field, func(t *testing.T) {
			data := orderData()
			delete(data, field)

			_, err := new(Order).Deserialize(data)

			require.EqualError(t, err, "Invalid order: missing "+field)
		})
	}
}

func TestDeserialize_NonMapping(t *testing.T) {
	for _, in := range []any{nil, 12.5, []any{}} {
		_, err := new(Order).Deserialize(in)

		require.EqualError(t, err, "Invalid order: body of request contained bad or no data")
	}
}

func TestDeserialize_BadDateFormat(t *testing.T) {
	for _, date := range []string{"2021-03-04", "2021-03-04T10:15:00Z", "04/03/2021 10:15:00.000000"} {
		t.Run(date, func(t *testing.T) {
			data := orderData()
			data["date"] = date

			_, err := new(Order).Deserialize(data)

			verr, ok := validation.AsError(err)
			require.True(t, ok)
			require.Equal(t, validation.CauseMalformedBody, verr.Cause)
			require.Equal(t, "date", verr.Field)
		})
	}
}

func TestSerialize(t *testing.T) {
	o := Order{ID: 3, CustomerID: 9, Date: time.Date(2021, 3, 4, 10, 15, 0, 500, time.UTC), Shipped: true}

	out := o.Serialize()

	require.Equal(t, map[string]any{
		"id":          int64(3),
		"customer_id": int64(9),
		"date":        "2021-03-04 10:15:00.000000",
		"shipped":     true,
	}, out)
}

func TestSerialize_RoundTrip(t *testing.T) {
	original := Order{CustomerID: 9, Date: time.Date(2022, 1, 2, 3, 4, 5, 678901000, time.UTC), Shipped: true}

	var copied Order
	_, err := copied.Deserialize(original.Serialize())

	require.NoError(t, err)
	require.Equal(t, original.CustomerID, copied.CustomerID)
	require.True(t, original.Date.Equal(copied.Date))
	require.Equal(t, original.Shipped, copied.Shipped)
	require.Nil(t, original.Serialize()["id"])
}

func TestDeserialize_UnshippedIsPresent(t *testing.T) {
	data := orderData()
	data["shipped"] = false
	data["customer_id"] = float64(0)

	var o Order
	_, err := o.Deserialize(data)

	require.NoError(t, err)
	require.False(t, o.Shipped)
	require.Zero(t, o.CustomerID)
}
