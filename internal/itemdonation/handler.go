package itemdonation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RedeSolidaria/api-doacoes/internal/donation"
	"github.com/RedeSolidaria/api-doacoes/internal/httpresult"
	"github.com/RedeSolidaria/api-doacoes/internal/product"
	"github.com/RedeSolidaria/api-doacoes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler valida e persiste itens de doação; consulta os repositórios de
// doações e produtos para checar as referências da chave composta
type Handler struct {
	DB                 *gorm.DB
	Repository         Repository
	DonationRepository donation.Repository
	ProductRepository  product.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:                 db,
		Repository:         NewRepository(),
		DonationRepository: donation.NewRepository(),
		ProductRepository:  product.NewRepository(),
	}
}

var errAborted = errors.New("aborted")

// ListItemsDonations retorna todos os itens de doação
func (h *Handler) ListItemsDonations(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading items donations"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(ToResponses(items)))
}

// ListItemsByDonation retorna os itens de uma doação específica
func (h *Handler) ListItemsByDonation(w http.ResponseWriter, r *http.Request) {
	idDonation := mux.Vars(r)["id_donation"]
	if utils.IsNullOrEmpty(idDonation) || !utils.IsBigInt(idDonation) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID from item donation is invalid or was not provided correctly"))
		return
	}
	idDonationNum, _ := strconv.ParseInt(idDonation, 10, 64)

	count, err := h.DonationRepository.CountByID(h.DB, idDonationNum)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading item donation by donation ID"))
		return
	}
	if count != 1 {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error donation ID does not exist at the table donation"))
		return
	}

	items, err := h.Repository.ListByDonation(h.DB, idDonationNum)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading item donation by donation ID"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(ToResponses(items)))
}

// parseKey valida os dois IDs da chave composta vindos da URL
func (h *Handler) parseKey(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	vars := mux.Vars(r)
	idDonation := vars["id_donation"]
	idProduct := vars["id_product"]

	if utils.IsNullOrEmpty(idDonation) || !utils.IsBigInt(idDonation) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID from item donation is invalid or was not provided correctly"))
		return 0, 0, false
	}
	if utils.IsNullOrEmpty(idProduct) || !utils.IsNumber(idProduct) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of product ID from item donation is invalid or was not provided correctly"))
		return 0, 0, false
	}

	idDonationNum, _ := strconv.ParseInt(idDonation, 10, 64)
	idProductNum, _ := strconv.ParseInt(idProduct, 10, 64)
	return idDonationNum, idProductNum, true
}

// GetItemDonationByKey retorna um item de doação pela chave composta
func (h *Handler) GetItemDonationByKey(w http.ResponseWriter, r *http.Request) {
	idDonation, idProduct, ok := h.parseKey(w, r)
	if !ok {
		return
	}

	var found Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.DonationRepository.CountByID(tx, idDonation)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error donation ID does not exist at the table donation"))
			return errAborted
		}

		count, err = h.ProductRepository.CountByID(tx, idProduct)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error product ID does not exist at the table product"))
			return errAborted
		}

		item, err := h.Repository.FindByKey(tx, idDonation, idProduct)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error item donation does not exist"))
			return errAborted
		}
		if err != nil {
			return err
		}
		found = item.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading item donation by ID"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(found))
}

// CreateItemDonation valida e cadastra um item; a chave composta não se repete
func (h *Handler) CreateItemDonation(w http.ResponseWriter, r *http.Request) {
	var req createItemDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	data := req.NewItemDonationData

	var created Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if utils.IsNullOrEmpty(data.IDDonation) || !utils.IsBigInt(data.IDDonation) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of ID donation is invalid"))
			return errAborted
		}
		if utils.IsNullOrEmpty(data.IDProduct) || !utils.IsBigInt(data.IDProduct) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of ID product is invalid"))
			return errAborted
		}

		if data.Amount == nil {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of amount is invalid"))
			return errAborted
		} else if *data.Amount <= 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of amount is less than or equal to zero"))
			return errAborted
		}

		idDonation, _ := strconv.ParseInt(data.IDDonation, 10, 64)
		idProduct, _ := strconv.ParseInt(data.IDProduct, 10, 64)

		count, err := h.DonationRepository.CountByID(tx, idDonation)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of ID donation do not exist"))
			return errAborted
		}

		count, err = h.ProductRepository.CountByID(tx, idProduct)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of ID product does not exist"))
			return errAborted
		}

		count, err = h.Repository.CountByKey(tx, idDonation, idProduct)
		if err != nil {
			return err
		}
		if count > 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there is already a item donation using those IDs"))
			return errAborted
		}

		newItem := ItemDonation{
			IDDonation: idDonation,
			IDProduct:  idProduct,
			Amount:     *data.Amount,
		}
		if err := h.Repository.Create(tx, &newItem); err != nil {
			return err
		}
		created = newItem.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error creating item donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(created))
}

// UpdateItemDonation altera um item localizado pela chave da URL; a chave nova,
// quando enviada, também precisa referenciar registros existentes e estar livre
func (h *Handler) UpdateItemDonation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idDonation := vars["id_donation"]
	idProduct := vars["id_product"]

	var req updateItemDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	data := req.NewItemDonationData

	var updated Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if utils.IsNullOrEmpty(idDonation) || !utils.IsBigInt(idDonation) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID from item donation is invalid or was not provided correctly"))
			return errAborted
		}
		idDonationNum, _ := strconv.ParseInt(idDonation, 10, 64)

		count, err := h.DonationRepository.CountByID(tx, idDonationNum)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error donation does not exist"))
			return errAborted
		}

		if utils.IsNullOrEmpty(idProduct) || !utils.IsBigInt(idProduct) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of product ID from item donation is invalid or was not provided correctly"))
			return errAborted
		}
		idProductNum, _ := strconv.ParseInt(idProduct, 10, 64)

		count, err = h.ProductRepository.CountByID(tx, idProductNum)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error product does not exist"))
			return errAborted
		}

		changes := map[string]interface{}{}
		newIDDonation := idDonationNum
		newIDProduct := idProductNum

		if data.IDDonation != "" {
			if !utils.IsBigInt(data.IDDonation) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the new value of donation ID from item donation is invalid or was not provided correctly"))
				return errAborted
			}
			newIDDonation, _ = strconv.ParseInt(data.IDDonation, 10, 64)

			count, err = h.DonationRepository.CountByID(tx, newIDDonation)
			if err != nil {
				return err
			}
			if count != 1 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error new donation does not exist"))
				return errAborted
			}
			changes["id_donation"] = newIDDonation
		}

		if data.IDProduct != "" {
			if !utils.IsBigInt(data.IDProduct) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the new value of product ID from item donation is invalid or was not provided correctly"))
				return errAborted
			}
			newIDProduct, _ = strconv.ParseInt(data.IDProduct, 10, 64)

			count, err = h.ProductRepository.CountByID(tx, newIDProduct)
			if err != nil {
				return err
			}
			if count != 1 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error new product does not exist"))
				return errAborted
			}
			changes["id_product"] = newIDProduct
		}

		if data.Amount != nil {
			if *data.Amount <= 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error new amount is less than or equal to zero"))
				return errAborted
			}
			changes["amount"] = *data.Amount
		}

		count, err = h.Repository.CountByKey(tx, idDonationNum, idProductNum)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error item donation does not exist"))
			return errAborted
		}

		keyChanged := newIDDonation != idDonationNum || newIDProduct != idProductNum
		if keyChanged {
			count, err = h.Repository.CountByKey(tx, newIDDonation, newIDProduct)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there is already a item donation using those IDs"))
				return errAborted
			}
		}

		if len(changes) > 0 {
			if err := h.Repository.UpdateByKey(tx, idDonationNum, idProductNum, changes); err != nil {
				return err
			}
		}

		item, err := h.Repository.FindByKey(tx, newIDDonation, newIDProduct)
		if err != nil {
			return err
		}
		updated = item.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error updating item donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(updated))
}

// BulkDeleteItemsDonations exclui vários itens; qualquer falha desfaz o lote
func (h *Handler) BulkDeleteItemsDonations(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteItemsDonationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}

	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, key := range req.IDs {
			if utils.IsNullOrEmpty(key.IDDonation) || !utils.IsBigInt(key.IDDonation) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID from item donation is invalid or was not provided correctly"))
				return errAborted
			}
			if utils.IsNullOrEmpty(key.IDProduct) || !utils.IsBigInt(key.IDProduct) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of product ID from item donation is invalid or was not provided correctly"))
				return errAborted
			}

			idDonation, _ := strconv.ParseInt(key.IDDonation, 10, 64)
			idProduct, _ := strconv.ParseInt(key.IDProduct, 10, 64)

			count, err := h.DonationRepository.CountByID(tx, idDonation)
			if err != nil {
				return err
			}
			if count != 1 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there are one or more IDs of donation that do not exist in array"))
				return errAborted
			}

			count, err = h.ProductRepository.CountByID(tx, idProduct)
			if err != nil {
				return err
			}
			if count != 1 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there are one or more IDs of product that do not exist in array"))
				return errAborted
			}

			count, err = h.Repository.CountByKey(tx, idDonation, idProduct)
			if err != nil {
				return err
			}
			if count == 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there are one or more items donation that do not exist in array"))
				return errAborted
			}

			if err := h.Repository.DeleteByKey(tx, idDonation, idProduct); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting items donations"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(deleted))
}

// DeleteItemDonation remove um item de doação pela chave composta
func (h *Handler) DeleteItemDonation(w http.ResponseWriter, r *http.Request) {
	idDonation, idProduct, ok := h.parseKey(w, r)
	if !ok {
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.DonationRepository.CountByID(tx, idDonation)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error donation ID does not exist at the table donation"))
			return errAborted
		}

		count, err = h.ProductRepository.CountByID(tx, idProduct)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error product ID does not exist at the table product"))
			return errAborted
		}

		count, err = h.Repository.CountByKey(tx, idDonation, idProduct)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error item donation does not exist"))
			return errAborted
		}
		return h.Repository.DeleteByKey(tx, idDonation, idProduct)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting item donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success("Item donation deleted successfully"))
}
