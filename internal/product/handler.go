package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RedeSolidaria/api-doacoes/internal/httpresult"
	"github.com/RedeSolidaria/api-doacoes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

var errAborted = errors.New("aborted")

type createProductRequest struct {
	NewProductData struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"newProductData"`
}

// ListProducts retorna todos os produtos
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading products"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(products))
}

// GetProductByID retorna um produto pelo ID
func (h *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of product ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	p, err := h.Repository.FindByID(h.DB, idNum)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error product does not exist"))
		return
	}
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading product by ID"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(p))
}

// CreateProduct cadastra um produto para ser referenciado pelos itens de doação
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	data := req.NewProductData

	var created Product
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if utils.IsNullOrEmpty(data.Name) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is invalid"))
			return errAborted
		} else if len(data.Name) > 100 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is too large"))
			return errAborted
		}

		if data.Description != "" && len(data.Description) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of description is too large"))
			return errAborted
		}

		created = Product{Name: data.Name}
		if data.Description != "" {
			created.Description = &data.Description
		}
		return h.Repository.Create(tx, &created)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error creating product"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(created))
}
