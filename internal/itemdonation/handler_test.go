package itemdonation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RedeSolidaria/api-doacoes/internal/donation"
	"github.com/RedeSolidaria/api-doacoes/internal/donor"
	"github.com/RedeSolidaria/api-doacoes/internal/product"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&donor.DonorEnterprise{},
		&donor.Donor{},
		&donation.Donation{},
		&product.Product{},
		&ItemDonation{},
	))

	require.NoError(t, db.Create(&donor.Donor{
		Email:          "carlos@x.com",
		Password:       "hash",
		DonationPeriod: "mensal",
		DonorType:      "D",
		Name:           "Carlos Souza",
		Phone:          "11912345678",
	}).Error)
	require.NoError(t, db.Create(&donation.Donation{IDDonor: 1, DonationType: "I"}).Error)
	require.NoError(t, db.Create(&donation.Donation{IDDonor: 1, DonationType: "I"}).Error)
	require.NoError(t, db.Create(&product.Product{Name: "Arroz 5kg"}).Error)
	require.NoError(t, db.Create(&product.Product{Name: "Feijão 1kg"}).Error)

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/items-donations", h.ListItemsDonations).Methods("GET")
	r.HandleFunc("/items-donations", h.CreateItemDonation).Methods("POST")
	r.HandleFunc("/items-donations", h.BulkDeleteItemsDonations).Methods("DELETE")
	r.HandleFunc("/items-donations/{id_donation}/{id_product}", h.GetItemDonationByKey).Methods("GET")
	r.HandleFunc("/items-donations/{id_donation}/{id_product}", h.UpdateItemDonation).Methods("PUT")
	r.HandleFunc("/items-donations/{id_donation}/{id_product}", h.DeleteItemDonation).Methods("DELETE")
	r.HandleFunc("/items-donations/{id_donation}", h.ListItemsByDonation).Methods("GET")
	return r, db
}

func doRequest(t *testing.T, r *mux.Router, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func itemBody(idDonation, idProduct string, amount float64) map[string]interface{} {
	return map[string]interface{}{
		"newItemDonationData": map[string]interface{}{
			"id_donation": idDonation,
			"id_product":  idProduct,
			"amount":      amount,
		},
	}
}

func TestCreateItemDonation(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "1", data.IDDonation)
	assert.Equal(t, "1", data.IDProduct)
	assert.Equal(t, 3.0, data.Amount)
}

func TestCreateItemDonationDuplicateKey(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	require.Equal(t, http.StatusOK, code)

	// mesma chave composta falha mesmo com outro amount
	code, env := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 10))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error there is already a item donation using those IDs", env.Message)
}

func TestCreateItemDonationInvalidAmount(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", -2))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error the value of amount is less than or equal to zero", env.Message)
}

func TestCreateItemDonationMissingReferences(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "POST", "/items-donations", itemBody("999", "1", 3))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error the value of ID donation do not exist", env.Message)

	code, env = doRequest(t, r, "POST", "/items-donations", itemBody("1", "999", 3))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error the value of ID product does not exist", env.Message)
}

func TestGetItemDonationByKey(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "2", 4))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "GET", "/items-donations/1/2", nil)
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "1", data.IDDonation)
	assert.Equal(t, "2", data.IDProduct)

	code, env = doRequest(t, r, "GET", "/items-donations/2/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Error item donation does not exist", env.Message)
}

func TestListItemsByDonation(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, "POST", "/items-donations", itemBody("1", "2", 5))
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, "POST", "/items-donations", itemBody("2", "1", 7))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "GET", "/items-donations/1", nil)
	assert.Equal(t, http.StatusOK, code)

	var data []Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 2)
}

func TestUpdateItemDonationAmount(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	require.Equal(t, http.StatusOK, code)

	body := map[string]interface{}{
		"newItemDonationData": map[string]interface{}{
			"amount": 9.0,
		},
	}
	code, env := doRequest(t, r, "PUT", "/items-donations/1/1", body)
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 9.0, data.Amount)
}

func TestUpdateItemDonationKeyCollision(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, "POST", "/items-donations", itemBody("1", "2", 5))
	require.Equal(t, http.StatusOK, code)

	// mover o item para uma chave já ocupada falha
	body := map[string]interface{}{
		"newItemDonationData": map[string]interface{}{
			"id_product": "2",
		},
	}
	code, env := doRequest(t, r, "PUT", "/items-donations/1/1", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error there is already a item donation using those IDs", env.Message)
}

func TestBulkDeleteItemsDonationsRollback(t *testing.T) {
	r, db := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, "POST", "/items-donations", itemBody("1", "2", 5))
	require.Equal(t, http.StatusOK, code)

	// o segundo par não existe; o lote inteiro é desfeito
	code, env := doRequest(t, r, "DELETE", "/items-donations", map[string]interface{}{
		"ids": []map[string]string{
			{"id_donation": "1", "id_product": "1"},
			{"id_donation": "2", "id_product": "2"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error there are one or more items donation that do not exist in array", env.Message)

	var count int64
	require.NoError(t, db.Model(&ItemDonation{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	code, env = doRequest(t, r, "DELETE", "/items-donations", map[string]interface{}{
		"ids": []map[string]string{
			{"id_donation": "1", "id_product": "1"},
			{"id_donation": "1", "id_product": "2"},
		},
	})
	assert.Equal(t, http.StatusOK, code)

	var deleted int64
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, int64(2), deleted)
}

func TestDeleteItemDonation(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/items-donations", itemBody("1", "1", 3))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "DELETE", "/items-donations/1/1", nil)
	assert.Equal(t, http.StatusOK, code)

	var msg string
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, "Item donation deleted successfully", msg)

	code, _ = doRequest(t, r, "DELETE", "/items-donations/1/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
