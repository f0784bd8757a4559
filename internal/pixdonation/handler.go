package pixdonation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RedeSolidaria/api-doacoes/internal/httpresult"
	"github.com/RedeSolidaria/api-doacoes/internal/utils"
	"gorm.io/gorm"
)

// Handler gerencia o registro PIX único do sistema
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

// GetPixDonation retorna o registro PIX quando existir
func (h *Handler) GetPixDonation(w http.ResponseWriter, r *http.Request) {
	p, err := h.Repository.First(h.DB)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error pix donation does not exist"))
		return
	}
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading pix donation by ID"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(p))
}

// CreatePixDonation cadastra o registro PIX; falha se já existir um
func (h *Handler) CreatePixDonation(w http.ResponseWriter, r *http.Request) {
	var req createPixDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	p := req.NewPixDonationData

	var created PixDonation
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.Count(tx)
		if err != nil {
			return err
		}
		if count > 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there is already a pix donation created"))
			return errAborted
		}

		if utils.IsNullOrEmpty(p.PixKey) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of pix key is invalid"))
			return errAborted
		} else if len(p.PixKey) > 32 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of pix key is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(p.Name) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is invalid"))
			return errAborted
		} else if len(p.Name) > 32 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(p.City) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is invalid"))
			return errAborted
		} else if len(p.City) > 32 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(p.Cep) || !utils.IsValidCep(p.Cep) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is invalid"))
			return errAborted
		} else if len(p.Cep) > 32 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is too large"))
			return errAborted
		}

		created = PixDonation{
			PixKey: p.PixKey,
			Name:   p.Name,
			City:   p.City,
			Cep:    utils.RemoveFormattingCep(p.Cep),
		}
		return h.Repository.Create(tx, &created)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error creating pix donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(created))
}

// UpdatePixDonation altera apenas os campos enviados do registro PIX
func (h *Handler) UpdatePixDonation(w http.ResponseWriter, r *http.Request) {
	var req updatePixDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	p := req.NewPixDonationData

	var updated PixDonation
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		current, err := h.Repository.First(tx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error pix donation does not exist"))
			return errAborted
		}
		if err != nil {
			return err
		}

		changes := map[string]interface{}{}

		if p.PixKey != "" {
			if len(p.PixKey) > 32 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of pix key is too large"))
				return errAborted
			}

			if p.PixKey != current.PixKey {
				count, err := h.Repository.CountByKey(tx, p.PixKey)
				if err != nil {
					return err
				}
				if count > 0 {
					httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a pix donation record already using this pix key"))
					return errAborted
				}
			}
			changes["pix_key"] = p.PixKey
		}

		if p.Name != "" {
			if len(p.Name) > 25 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is too large"))
				return errAborted
			}
			changes["name"] = p.Name
		}

		if p.City != "" {
			if len(p.City) > 30 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is too large"))
				return errAborted
			}
			changes["city"] = p.City
		}

		if p.Cep != "" {
			if len(p.Cep) > 8 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is too large"))
				return errAborted
			} else if !utils.IsValidCep(p.Cep) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is invalid"))
				return errAborted
			}
			changes["cep"] = utils.RemoveFormattingCep(p.Cep)
		}

		if len(changes) > 0 {
			if err := h.Repository.UpdateByKey(tx, current.PixKey, changes); err != nil {
				return err
			}
		}

		refreshed, err := h.Repository.First(tx)
		if err != nil {
			return err
		}
		updated = *refreshed
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error updating pix donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(updated))
}

// DeletePixDonation remove o registro PIX, se houver
func (h *Handler) DeletePixDonation(w http.ResponseWriter, r *http.Request) {
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.Count(tx)
		if err != nil {
			return err
		}
		if count == 0 {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error pix donation does not exist"))
			return errAborted
		}
		return h.Repository.DeleteAll(tx)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting pix donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success("Pix donation deleted successfully"))
}
