package commerce

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method   string
	Path     string
	Query    string
	ClientID string
	Body     []byte
}

type route struct {
	status int
	body   string
}

func newBackend(t *testing.T, routes map[string]route) (*Client, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			Query:    r.URL.RawQuery,
			ClientID: r.Header.Get("client_id"),
			Body:     body,
		})

		rt, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rt.status)
		w.Write([]byte(rt.body))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		ProductURL: server.URL + "/",
		PhoneURL:   server.URL,
		PaymentURL: server.URL,
		SMSURL:     server.URL,
		ClientID:   "client-123",
	}, server.Client())
	return client, &recorded
}

func TestSearchProducts(t *testing.T) {
	client, recorded := newBackend(t, map[string]route{
		"GET /products/": {http.StatusOK, `[{"productId":"p1","name":"Widget","installment":"10x R$ 9,90","price":99}]`},
	})

	products, err := client.SearchProducts(context.Background(), "widget azul")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, Product{ProductID: "p1", Name: "Widget", Installment: "10x R$ 9,90", Price: 99}, products[0])

	require.Len(t, *recorded, 1)
	assert.Equal(t, "name=widget+azul", (*recorded)[0].Query)
	assert.Equal(t, "client-123", (*recorded)[0].ClientID)
}

func TestSearchProducts_NoMatches(t *testing.T) {
	client, _ := newBackend(t, map[string]route{
		"GET /products/": {http.StatusOK, `[]`},
	})

	products, err := client.SearchProducts(context.Background(), "nada")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProduct(t *testing.T) {
	client, _ := newBackend(t, map[string]route{
		"GET /products/p1": {http.StatusOK, `{"name":"Widget","price":99}`},
	})

	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ProductID)
	assert.Equal(t, "Widget", product.Name)
}

func TestGetProductImage(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}
	client, _ := newBackend(t, map[string]route{
		"GET /products/p1/images": {http.StatusOK, `{"data":"` + base64.StdEncoding.EncodeToString(image) + `"}`},
		"GET /products/p2/images": {http.StatusOK, `{"data":"not base64!"}`},
	})

	got, err := client.GetProductImage(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, image, got)

	_, err = client.GetProductImage(context.Background(), "p2")
	assert.Error(t, err)

	_, err = client.GetProductImage(context.Background(), "missing")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestRegisterNotification(t *testing.T) {
	client, recorded := newBackend(t, map[string]route{
		"POST /notifications": {http.StatusCreated, `{}`},
	})

	err := client.RegisterNotification(context.Background(), Notification{
		Product:  "Widget",
		SenderID: "42",
		Callback: "https://bot.example.com/notification",
	})
	require.NoError(t, err)

	var sent map[string]string
	require.NoError(t, json.Unmarshal((*recorded)[0].Body, &sent))
	assert.Equal(t, map[string]string{
		"product":  "Widget",
		"senderId": "42",
		"callback": "https://bot.example.com/notification",
	}, sent)
}

func TestListPhones(t *testing.T) {
	client, _ := newBackend(t, map[string]route{
		"GET /usuarios/42/telefones": {http.StatusOK, `[{"numero":"+5511987654321"}]`},
	})

	phones, err := client.ListPhones(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []Phone{{Number: "+5511987654321"}}, phones)

	phones, err = client.ListPhones(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, phones)
}

func TestListPhones_EmptyNotFoundMeansNoPhones(t *testing.T) {
	client, recorded := newBackend(t, map[string]route{
		"GET /usuarios/43/telefones": {http.StatusNotFound, ``},
	})

	phones, err := client.ListPhones(context.Background(), "43")
	require.NoError(t, err)
	assert.Empty(t, phones)
	assert.Equal(t, "client-123", (*recorded)[0].ClientID)
}

func TestListPhones_EmptyOKBody(t *testing.T) {
	client, _ := newBackend(t, map[string]route{
		"GET /usuarios/44/telefones": {http.StatusOK, ``},
	})

	phones, err := client.ListPhones(context.Background(), "44")
	require.NoError(t, err)
	assert.Empty(t, phones)
}

func TestListPhones_ServerError(t *testing.T) {
	client, _ := newBackend(t, map[string]route{
		"GET /usuarios/45/telefones": {http.StatusInternalServerError, ``},
	})

	_, err := client.ListPhones(context.Background(), "45")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestRegisterPhone_RequiresCreated(t *testing.T) {
	client, recorded := newBackend(t, map[string]route{
		"POST /usuarios/42/telefones": {http.StatusCreated, ``},
		"POST /usuarios/43/telefones": {http.StatusOK, ``},
	})

	require.NoError(t, client.RegisterPhone(context.Background(), "42", "+5511987654321"))
	assert.JSONEq(t, `{"numero":"+5511987654321"}`, string((*recorded)[0].Body))

	err := client.RegisterPhone(context.Background(), "43", "+5511987654321")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusOK, statusErr.StatusCode)
}

func TestCreatePayment(t *testing.T) {
	client, recorded := newBackend(t, map[string]route{
		"POST /payments": {http.StatusCreated, `{"id":"pay-1","status":"pending","checkoutUrl":"https://pay.example.com/c/pay-1"}`},
	})

	payment, err := client.CreatePayment(context.Background(), PaymentRequest{
		Amount:    99,
		Item:      "Widget",
		ProductID: "p1",
		Provider:  "paypal",
		UserID:    "42",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, "https://pay.example.com/c/pay-1", payment.CheckoutURL)
	assert.Equal(t, "client-123", (*recorded)[0].ClientID)
}

func TestSendSMS(t *testing.T) {
	client, recorded := newBackend(t, map[string]route{
		"POST /sms": {http.StatusAccepted, ``},
	})

	require.NoError(t, client.SendSMS(context.Background(), SMS{To: "+5511987654321", Message: "Obrigado!"}))
	assert.JSONEq(t, `{"to":"+5511987654321","message":"Obrigado!"}`, string((*recorded)[0].Body))
}
