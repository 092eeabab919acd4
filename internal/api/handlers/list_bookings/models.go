package list_bookings

import (
	"net/url"
	"strconv"

	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

// ParseQuery reads the list view parameters from the URL query.
// Unknown sort fields and page sizes are normalized by the service, so
// parsing here only extracts the raw values.
func ParseQuery(hubID int64, query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{
		HubID: hubID,
		Query: query.Get("q"),
		Sort:  query.Get("sort"),
		Dir:   query.Get("dir"),
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("dateFrom"); v != "" {
		req.DateFrom = &v
	}
	if v := query.Get("dateTo"); v != "" {
		req.DateTo = &v
	}
	if v, err := strconv.Atoi(query.Get("page")); err == nil {
		req.Page = v
	}
	if v, err := strconv.Atoi(query.Get("perPage")); err == nil {
		req.PerPage = v
	}

	return req
}
