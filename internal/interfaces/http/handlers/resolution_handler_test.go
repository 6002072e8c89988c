package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newResolveRouter(d *handlerDesk) *gin.Engine {
	r := gin.New()
	r.POST("/resolve", d.resolve.Resolve)
	return r
}

func TestResolutionHandler_Resolved(t *testing.T) {
	d := newHandlerDesk(t)
	w := doJSON(newResolveRouter(d), http.MethodPost, "/resolve",
		`{"issueText":"I ordered a pizza for ₹400 and it arrived spilled, totally unacceptable","amount":400}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "RESOLVED", body["state"])
	assert.Equal(t, "REF_001", body["transactionId"])
	assert.Equal(t, "VCH_001", body["voucherId"])
}

func TestResolutionHandler_NeedsInfo(t *testing.T) {
	d := newHandlerDesk(t)
	w := doJSON(newResolveRouter(d), http.MethodPost, "/resolve", `{"issueText":"I am not happy"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "NEEDS_INFO", body["state"])
	assert.Nil(t, body["plan"])
}

func TestResolutionHandler_UnknownCustomer(t *testing.T) {
	d := newHandlerDesk(t)
	w := doJSON(newResolveRouter(d), http.MethodPost, "/resolve",
		`{"issueText":"My pizza was cold","customerId":"C999"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Customer or order not found", body["message"])
}

func TestResolutionHandler_MalformedBody(t *testing.T) {
	d := newHandlerDesk(t)
	w := doJSON(newResolveRouter(d), http.MethodPost, "/resolve", `{"issueText":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "MALFORMED_INPUT", body["code"])
}
