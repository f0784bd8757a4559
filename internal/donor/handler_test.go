package donor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&DonorEnterprise{}, &Donor{}))

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/donors/login", h.Login).Methods("POST")
	r.HandleFunc("/donors", h.ListDonors).Methods("GET")
	r.HandleFunc("/donors", h.CreateDonor).Methods("POST")
	r.HandleFunc("/donors", h.BulkDeleteDonors).Methods("DELETE")
	r.HandleFunc("/donors/{id}", h.GetDonorByID).Methods("GET")
	r.HandleFunc("/donors/{id}", h.UpdateDonor).Methods("PUT")
	r.HandleFunc("/donors/{id}", h.DeleteDonor).Methods("DELETE")
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

func validDonorBody(email, phone string) map[string]interface{} {
	return map[string]interface{}{
		"newDonorData": map[string]interface{}{
			"email":           email,
			"password":        "segredo123",
			"donation_period": "mensal",
			"donor_type":      "A",
			"name":            "Carlos Souza",
			"phone":           phone,
		},
	}
}

func enterpriseBody() map[string]interface{} {
	return map[string]interface{}{
		"responsible_name":  "Maria Lima",
		"enterprise_name":   "Mercado Boa Vista",
		"cnpj":              "11.222.333/0001-81",
		"cep":               "12345-678",
		"city":              "São Paulo",
		"street":            "Rua das Flores",
		"enterprise_number": "100",
		"neighborhood":      "Centro",
	}
}

func TestCreateDonorNormalizesPhone(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "POST", "/donors", validDonorBody("carlos@x.com", "(11) 91234-5678"))
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "1", data.ID)
	assert.Equal(t, "11912345678", data.Phone)
}

func TestCreateDonorEmptyEnterpriseObject(t *testing.T) {
	r, _ := setupRouter(t)

	code, env := doRequest(t, r, "POST", "/donors", validDonorBody("carlos@x.com", "11912345678"))
	require.Equal(t, http.StatusOK, code)

	// doador pessoa física ainda carrega donor_enterprise como objeto vazio
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	assert.JSONEq(t, "{}", string(raw["donor_enterprise"]))
}

func TestCreateDonorWithEnterprise(t *testing.T) {
	r, _ := setupRouter(t)

	body := validDonorBody("loja@x.com", "11912345678")
	body["newDonorEnterpriseData"] = enterpriseBody()

	code, env := doRequest(t, r, "POST", "/donors", body)
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "11222333000181", data.Enterprise.Cnpj)
	assert.Equal(t, "12345678", data.Enterprise.Cep)
}

func TestCreateDonorDuplicateCnpj(t *testing.T) {
	r, _ := setupRouter(t)

	body := validDonorBody("loja@x.com", "11912345678")
	body["newDonorEnterpriseData"] = enterpriseBody()
	code, _ := doRequest(t, r, "POST", "/donors", body)
	require.Equal(t, http.StatusOK, code)

	body = validDonorBody("outra@x.com", "11900001111")
	body["newDonorEnterpriseData"] = enterpriseBody()
	code, env := doRequest(t, r, "POST", "/donors", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error a donor already using this cnpj", env.Message)
}

func TestCreateDonorBirthDateInFuture(t *testing.T) {
	r, _ := setupRouter(t)

	body := validDonorBody("carlos@x.com", "11912345678")
	body["newDonorData"].(map[string]interface{})["birth_date"] = "2999-01-01"
	code, env := doRequest(t, r, "POST", "/donors", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error the value of birth date is in the future", env.Message)
}

func TestUpdateDonorCannotAttachEnterprise(t *testing.T) {
	r, db := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donors", validDonorBody("carlos@x.com", "11912345678"))
	require.Equal(t, http.StatusOK, code)

	body := map[string]interface{}{
		"newDonorData":           map[string]interface{}{},
		"newDonorEnterpriseData": enterpriseBody(),
	}
	code, env := doRequest(t, r, "PUT", "/donors/1", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Error a donor cannot be updated to become a donor enterprise", env.Message)

	// nada pode ter sido criado
	var count int64
	require.NoError(t, db.Model(&DonorEnterprise{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateDonorFields(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donors", validDonorBody("carlos@x.com", "11912345678"))
	require.Equal(t, http.StatusOK, code)

	body := map[string]interface{}{
		"newDonorData": map[string]interface{}{
			"name":  "Carlos Alberto",
			"email": "carlos@x.com",
		},
	}
	code, env := doRequest(t, r, "PUT", "/donors/1", body)
	assert.Equal(t, http.StatusOK, code)

	var data Response
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Carlos Alberto", data.Name)
}

func TestLoginFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donors", validDonorBody("carlos@x.com", "11912345678"))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "POST", "/donors/login", map[string]string{
		"login":    "carlos@x.com",
		"password": "segredo123",
	})
	assert.Equal(t, http.StatusOK, code)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data["token"])

	code, env = doRequest(t, r, "POST", "/donors/login", map[string]string{
		"login":    "carlos@x.com",
		"password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
}

func TestDeleteDonor(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := doRequest(t, r, "POST", "/donors", validDonorBody("carlos@x.com", "11912345678"))
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, r, "DELETE", "/donors/1", nil)
	assert.Equal(t, http.StatusOK, code)

	var msg string
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, "Donor deleted successfully", msg)

	code, _ = doRequest(t, r, "GET", "/donors/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
