package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/priyankawadle/Booking-Room-API/internal/domain"
	"github.com/priyankawadle/Booking-Room-API/internal/handler/dto"
	hmocks "github.com/priyankawadle/Booking-Room-API/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		bookings.POST("", h.BookRoom)
		bookings.GET("/details", h.ViewBookingDetails)
		bookings.GET("/guests", h.ViewAllGuests)
		bookings.DELETE("/cancel", h.CancelBooking)
		bookings.PUT("/modify", h.ModifyBooking)
	}

	return bookingSvc, r
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		Name:       "A",
		Email:      "a@x.com",
		Contact:    "1",
		CheckIn:    "2025-01-01",
		CheckOut:   "2025-01-02",
		RoomNumber: 101,
	}
}

// --- Book ---

func TestHandler_BookRoom_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(sampleBooking(), nil)

	body, _ := json.Marshal(dto.BookRoomRequest{
		Name:     "A",
		Email:    "a@x.com",
		Contact:  "1",
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-02",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookRoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Room booked successfully!", resp.Message)
	assert.Equal(t, 101, resp.BookingDetails.RoomNumber)
	assert.Equal(t, "2025-01-01", resp.BookingDetails.CheckIn)
}

func TestHandler_BookRoom_MissingField(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"name":"A","contact":"1","checkIn":"2025-01-01","checkOut":"2025-01-02"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookRoom_EmptyBody(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required booking details.", resp.Message)
}

func TestHandler_BookRoom_NoRooms(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrNoRoomsAvailable)

	body, _ := json.Marshal(dto.BookRoomRequest{
		Name:     "A",
		Email:    "a@x.com",
		Contact:  "1",
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-02",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No rooms available at the moment.", resp.Message)
}

// --- Details ---

func TestHandler_ViewBookingDetails_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(sampleBooking(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/details?email=a@x.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking found.", resp.Message)
	assert.Equal(t, 101, resp.BookingDetails.RoomNumber)
}

func TestHandler_ViewBookingDetails_MissingEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/details", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email is required to fetch details.", resp.Message)
}

func TestHandler_ViewBookingDetails_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().FindByEmail(mock.Anything, "missing@x.com").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/details?email=missing@x.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No booking found for this email.", resp.Message)
}

// --- Guests ---

func TestHandler_ViewAllGuests_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookings := []*domain.Booking{
		sampleBooking(),
		{Name: "B", Email: "b@x.com", Contact: "2", CheckIn: "2025-01-03", CheckOut: "2025-01-04", RoomNumber: 102},
	}
	bookingSvc.EXPECT().List(mock.Anything).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/guests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.GuestListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Guests, 2)
	assert.Equal(t, 101, resp.Guests[0].RoomNumber)
	assert.Equal(t, 102, resp.Guests[1].RoomNumber)
}

func TestHandler_ViewAllGuests_Empty(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/guests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"guests":[]`)
}

// --- Cancel ---

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, "a@x.com", 101).Return(sampleBooking(), nil)

	body := []byte(`{"email":"a@x.com","roomNumber":101}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking cancelled successfully.", resp.Message)
	assert.Equal(t, 101, resp.CancelledBooking.RoomNumber)
}

func TestHandler_CancelBooking_StringRoomNumber(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, "a@x.com", 101).Return(sampleBooking(), nil)

	body := []byte(`{"email":"a@x.com","roomNumber":"101"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_MissingRoomNumber(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"email":"a@x.com"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NonNumericRoomNumber(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"email":"a@x.com","roomNumber":"abc"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, "a@x.com", 999).Return(nil, domain.ErrBookingNotFound)

	body := []byte(`{"email":"a@x.com","roomNumber":999}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking not found.", resp.Message)
}

// --- Modify ---

func TestHandler_ModifyBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	updated := sampleBooking()
	updated.CheckOut = "2025-02-01"

	bookingSvc.EXPECT().Modify(mock.Anything, domain.ModifyBookingInput{
		Email:      "a@x.com",
		RoomNumber: 101,
		CheckOut:   "2025-02-01",
	}).Return(updated, nil)

	body := []byte(`{"email":"a@x.com","roomNumber":101,"checkOut":"2025-02-01"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/modify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModifyBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking updated successfully.", resp.Message)
	assert.Equal(t, "2025-02-01", resp.UpdatedBooking.CheckOut)
	assert.Equal(t, "2025-01-01", resp.UpdatedBooking.CheckIn)
}

func TestHandler_ModifyBooking_MissingEmail(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Modify(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"roomNumber":101,"checkOut":"2025-02-01"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/modify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ModifyBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Modify(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotFound)

	body := []byte(`{"email":"missing@x.com","roomNumber":101,"checkIn":"2025-03-01"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/modify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Errors ---

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/guests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Server error", resp.Message)
}
