package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directory/internal/delivery/http/validator"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBusiness struct {
	registerInput *usecase.RegisterBusinessInput
	updateID      string
	updateInput   *usecase.UpdateBusinessInput
	areaID        string
	areaInput     *usecase.ServiceAreaInput
	business      *entity.Business
	err           error
}

func (s *stubBusiness) RegisterBusiness(_ context.Context, input *usecase.RegisterBusinessInput) (*entity.Business, error) {
	s.registerInput = input

	return s.business, s.err
}

func (s *stubBusiness) GetBusiness(_ context.Context, _ string) (*entity.Business, error) {
	return s.business, s.err
}

func (s *stubBusiness) UpdateBusiness(_ context.Context, id string, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	s.updateID = id
	s.updateInput = input

	return s.business, s.err
}

func (s *stubBusiness) SetServiceArea(_ context.Context, id string, input *usecase.ServiceAreaInput) error {
	s.areaID = id
	s.areaInput = input

	return s.err
}

func newBusinessContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestBusinessHandler_Register(t *testing.T) {
	stub := &stubBusiness{business: &entity.Business{ID: "biz-1"}}
	handler := NewBusinessHandler(stub, newTestLogger())

	body := `{
		"business_name": "Boise Pipes",
		"primary_category": "Plumbing",
		"categories": ["home-services > Flooring"],
		"zip": "83702",
		"zip_codes": ["83702", "83703"]
	}`
	c, rec := newBusinessContext(http.MethodPost, "/businesses", body)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.registerInput)
	assert.Equal(t, "Boise Pipes", stub.registerInput.BusinessName)
	assert.Equal(t, "Plumbing", stub.registerInput.PrimaryCategory)
	assert.Equal(t, []string{"83702", "83703"}, stub.registerInput.ZipCodes)
}

func TestBusinessHandler_Register_EmptyBody(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, _ := newBusinessContext(http.MethodPost, "/businesses", "")

	var err error
	assert.NotPanics(t, func() { err = handler.Register(c) })
	assertErrorCode(t, err, "VALIDATION_FAILED")
	assert.Nil(t, stub.registerInput)
}

func TestBusinessHandler_Register_MissingRequiredFields(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, _ := newBusinessContext(http.MethodPost, "/businesses", `{"business_name": "Boise Pipes"}`)

	err := handler.Register(c)
	assertErrorCode(t, err, "VALIDATION_FAILED")
	assert.Nil(t, stub.registerInput)
}

func TestBusinessHandler_Register_BadZipCodes(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	body := `{"business_name": "Boise Pipes", "primary_category": "Plumbing", "zip_codes": ["837"]}`
	c, _ := newBusinessContext(http.MethodPost, "/businesses", body)

	err := handler.Register(c)
	assertErrorCode(t, err, "VALIDATION_FAILED")
	assert.Nil(t, stub.registerInput)
}

func TestBusinessHandler_Update(t *testing.T) {
	stub := &stubBusiness{business: &entity.Business{ID: "biz-1"}}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, rec := newBusinessContext(http.MethodPut, "/businesses/biz-1", `{"phone": "208-555-0100"}`)
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	require.NoError(t, handler.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "biz-1", stub.updateID)
	require.NotNil(t, stub.updateInput)
	require.NotNil(t, stub.updateInput.Phone)
	assert.Equal(t, "208-555-0100", *stub.updateInput.Phone)
	assert.Nil(t, stub.updateInput.BusinessName)
}

func TestBusinessHandler_Update_EmptyBody(t *testing.T) {
	stub := &stubBusiness{business: &entity.Business{ID: "biz-1"}}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, rec := newBusinessContext(http.MethodPut, "/businesses/biz-1", "")
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	var err error
	assert.NotPanics(t, func() { err = handler.Update(c) })
	require.NoError(t, err)

	// An empty patch changes nothing but is still a well-formed request.
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updateInput)
	assert.Nil(t, stub.updateInput.BusinessName)
}

func TestBusinessHandler_Update_BlankName(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, _ := newBusinessContext(http.MethodPut, "/businesses/biz-1", `{"business_name": ""}`)
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	err := handler.Update(c)
	assertErrorCode(t, err, "VALIDATION_FAILED")
	assert.Nil(t, stub.updateInput)
}

func TestBusinessHandler_SetServiceArea(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, rec := newBusinessContext(http.MethodPut, "/businesses/biz-1/service-area", `{"zip_codes": ["83702"]}`)
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	require.NoError(t, handler.SetServiceArea(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "biz-1", stub.areaID)
	require.NotNil(t, stub.areaInput)
	assert.Equal(t, []string{"83702"}, stub.areaInput.ZipCodes)
}

func TestBusinessHandler_SetServiceArea_EmptyBody(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, rec := newBusinessContext(http.MethodPut, "/businesses/biz-1/service-area", "")
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	var err error
	assert.NotPanics(t, func() { err = handler.SetServiceArea(c) })
	require.NoError(t, err)

	// An empty body clears the service area.
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.areaInput)
	assert.False(t, stub.areaInput.Nationwide)
	assert.Empty(t, stub.areaInput.ZipCodes)
}

func TestBusinessHandler_SetServiceArea_BadZipCodes(t *testing.T) {
	stub := &stubBusiness{}
	handler := NewBusinessHandler(stub, newTestLogger())

	c, _ := newBusinessContext(http.MethodPut, "/businesses/biz-1/service-area", `{"zip_codes": ["boise"]}`)
	c.SetParamNames("id")
	c.SetParamValues("biz-1")

	err := handler.SetServiceArea(c)
	assertErrorCode(t, err, "SERVICE_AREA_INVALID")
	assert.Nil(t, stub.areaInput)
}
