package donation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RedeSolidaria/api-doacoes/internal/donor"
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
	require.NoError(t, db.AutoMigrate(&donor.DonorEnterprise{}, &donor.Donor{}, &Donation{}))

	// doador dono das doações dos testes
	require.NoError(t, db.Create(&donor.Donor{
		Email:          "carlos@x.com",
		Password:       "hash",
		DonationPeriod: "mensal",
		DonorType:      "D",
		Name:           "Carlos Souza",
		Phone:          "11912345678",
	}).Error)

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/donations", h.ListDonations).Methods("GET")
	r.HandleFunc("/donations", h.CreateDonation).Methods("POST")
	r.HandleFunc("/donations", h.BulkDeleteDonations).Methods("DELETE")
	r.HandleFunc("/donations/toReceive", h.ListToReceiveDonations).Methods("GET")
	r.HandleFunc("/donations/{id}", h.GetDonationByID).Methods("GET")
	r.HandleFunc("/donations/{id}", h.UpdateDonation).Methods("PUT")
	r.HandleFunc("/donations/{id}", h.DeleteDonation).Methods("DELETE")
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

func donationBody(received bool) map[string]interface{} {
	return map[string]interface{}{
		"newDonationData": map[string]interface{}{
			"id_donor":          "1",
			"donation_type":     "M",
			"donation_value":    50.0,
			"donation_received": received,
		},
	}
}

func TestCreateDonation(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "POST", "/donations", donationBody(true))
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "1", data.ID)
	assert.Equal(t, "1", data.IDDonor)
	assert.True(t, data.DonationReceived)
}

func TestCreateDonationNegativeValue(t *testing.T) {
	r, _ := setupRouter(t)

	body := donationBody(true)
	body["newDonationData"].(map[string]interface{})["donation_value"] = -5.0
	code, env := doRequest(t, r, "POST", "/donations", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error the value of donation value is less than or equal to zero", env.Message)
}

func TestCreateDonationMissingDonor(t *testing.T) {
	r, _ := setupRouter(t)

	body := donationBody(true)
	body["newDonationData"].(map[string]interface{})["id_donor"] = "999"
	code, env := doRequest(t, r, "POST", "/donations", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error donor does not exist", env.Message)
}

func TestCreateDonationMissingReceivedFlag(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]interface{}{
		"newDonationData": map[string]interface{}{
			"id_donor":      "1",
			"donation_type": "M",
		},
	}
	code, env := doRequest(t, r, "POST", "/donations", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error the value of donation received is invalid", env.Message)
}

func TestListToReceiveDonations(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donations", donationBody(true))
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, "POST", "/donations", donationBody(false))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "GET", "/donations/toReceive", nil)
	assert.Equal(t, http.StatusOK, code)

	var data []Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "2", data[0].ID)
	assert.False(t, data[0].DonationReceived)
}

func TestUpdateDonation(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donations", donationBody(false))
	require.Equal(t, http.StatusOK, code)

	body := map[string]interface{}{
		"newDonationData": map[string]interface{}{
			"donation_received": true,
			"donation_value":    75.0,
		},
	}
	code, env := doRequest(t, r, "PUT", "/donations/1", body)
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.DonationReceived)
	require.NotNil(t, data.DonationValue)
	assert.Equal(t, 75.0, *data.DonationValue)
}

func TestGetDonationNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "GET", "/donations/999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Error donation does not exist", env.Message)
}

func TestBulkDeleteDonationsAllOrNothing(t *testing.T) {
	r, db := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donations", donationBody(true))
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, "POST", "/donations", donationBody(false))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "DELETE", "/donations", map[string]interface{}{"ids": []string{"1", "999"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error there are one or more donations that do not exist in array", env.Message)

	var count int64
	require.NoError(t, db.Model(&Donation{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDeleteDonation(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donations", donationBody(true))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "DELETE", "/donations/1", nil)
	assert.Equal(t, http.StatusOK, code)

	var msg string
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, "Donation deleted successfully", msg)
}
