package family

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

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// erro sentinela: a resposta já foi escrita, só resta desfazer a transação
var errAborted = errors.New("aborted")

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListFamilies retorna todas as famílias com os IDs como string
func (h *Handler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading families"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(ToResponses(families)))
}

// GetFamilyByID retorna uma família pelo ID
func (h *Handler) GetFamilyByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	f, err := h.Repository.FindByID(h.DB, idNum)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error family does not exist"))
		return
	}
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading family by ID"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(f.ToResponse()))
}

// CreateFamily valida e cadastra uma nova família
func (h *Handler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	d := req.NewFamilyData

	var created Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if utils.IsNullOrEmpty(d.FamilyName) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family name is invalid"))
			return errAborted
		} else if len(d.FamilyName) > 50 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family name is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.FamilyResponsibleName) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family responsible name is invalid"))
			return errAborted
		} else if len(d.FamilyResponsibleName) > 50 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family responsible name is too large"))
			return errAborted
		}

		if d.NumberMembers != nil && *d.NumberMembers <= 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of number member is less than or equal to zero"))
			return errAborted
		}

		if d.WithdrawDonations == nil {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of withdraw donations is invalid"))
			return errAborted
		}

		if d.Cep != "" {
			if len(d.Cep) > 8 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is too large"))
				return errAborted
			} else if !utils.IsValidCep(d.Cep) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is invalid"))
				return errAborted
			}
			d.Cep = utils.RemoveFormattingCep(d.Cep)
		}

		if d.City != "" && len(d.City) > 60 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is too large"))
			return errAborted
		}

		if d.Street != "" && len(d.Street) > 60 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of street is too large"))
			return errAborted
		}

		if d.HouseNumber != "" && len(d.HouseNumber) > 6 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of house number is too large"))
			return errAborted
		}

		if d.Neighborhood != "" && len(d.Neighborhood) > 60 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of neighborhood is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.Email) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of email is invalid"))
			return errAborted
		} else if len(d.Email) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of email is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.Phone) || !utils.IsValidPhone(d.Phone) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of phone is invalid"))
			return errAborted
		} else if len(d.Phone) > 20 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of phone is too large"))
			return errAborted
		}

		count, err := h.Repository.CountByEmail(tx, d.Email)
		if err != nil {
			return err
		}
		if count > 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a family already using this email"))
			return errAborted
		}

		count, err = h.Repository.CountByPhone(tx, d.Phone)
		if err != nil {
			return err
		}
		if count > 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a family already using this phone number"))
			return errAborted
		}

		f := Family{
			FamilyName:            d.FamilyName,
			FamilyResponsibleName: d.FamilyResponsibleName,
			NumberMembers:         d.NumberMembers,
			WithdrawDonations:     *d.WithdrawDonations,
			Cep:                   optional(d.Cep),
			City:                  optional(d.City),
			Street:                optional(d.Street),
			HouseNumber:           optional(d.HouseNumber),
			Neighborhood:          optional(d.Neighborhood),
			Email:                 d.Email,
			Phone:                 d.Phone,
		}
		if err := h.Repository.Create(tx, &f); err != nil {
			return err
		}
		created = f.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error creating family"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(created))
}

// UpdateFamily altera apenas os campos enviados de uma família existente
func (h *Handler) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	var req updateFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	d := req.NewFamilyData

	var updated Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		f, err := h.Repository.FindByID(tx, idNum)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error family does not exist"))
			return errAborted
		}
		if err != nil {
			return err
		}

		if d.FamilyName != "" {
			if len(d.FamilyName) > 50 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family name is too large"))
				return errAborted
			}
			f.FamilyName = d.FamilyName
		}

		if d.FamilyResponsibleName != "" {
			if len(d.FamilyResponsibleName) > 50 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family responsible name is too large"))
				return errAborted
			}
			f.FamilyResponsibleName = d.FamilyResponsibleName
		}

		if d.NumberMembers != nil {
			if *d.NumberMembers <= 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of number member is less than or equal to zero"))
				return errAborted
			}
			f.NumberMembers = d.NumberMembers
		}

		// withdraw_donations é obrigatório em todo update, mesmo que não mude
		if d.WithdrawDonations == nil {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of withdraw donations is invalid"))
			return errAborted
		}
		f.WithdrawDonations = *d.WithdrawDonations

		if d.Cep != "" {
			if len(d.Cep) > 8 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is too large"))
				return errAborted
			} else if !utils.IsValidCep(d.Cep) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is invalid"))
				return errAborted
			}
			f.Cep = optional(utils.RemoveFormattingCep(d.Cep))
		}

		if d.City != "" {
			if len(d.City) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is too large"))
				return errAborted
			}
			f.City = optional(d.City)
		}

		if d.Street != "" {
			if len(d.Street) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of street is too large"))
				return errAborted
			}
			f.Street = optional(d.Street)
		}

		if d.HouseNumber != "" {
			if len(d.HouseNumber) > 6 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of house number is too large"))
				return errAborted
			}
			f.HouseNumber = optional(d.HouseNumber)
		}

		if d.Neighborhood != "" {
			if len(d.Neighborhood) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of neighborhood is too large"))
				return errAborted
			}
			f.Neighborhood = optional(d.Neighborhood)
		}

		if d.Email != "" && len(d.Email) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of email is too large"))
			return errAborted
		}

		var newPhone string
		if d.Phone != "" {
			if len(d.Phone) > 20 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of phone is too large"))
				return errAborted
			} else if !utils.IsValidPhone(d.Phone) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of phone is invalid"))
				return errAborted
			}
			newPhone = utils.RemoveFormattingPhone(d.Phone)
		}

		// unicidade só é reavaliada quando o valor enviado difere do armazenado
		if d.Email != "" && d.Email != f.Email {
			count, err := h.Repository.CountByEmail(tx, d.Email)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a family already using this email"))
				return errAborted
			}
		}

		if newPhone != "" && newPhone != f.Phone {
			count, err := h.Repository.CountByPhone(tx, newPhone)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a family already using this phone number"))
				return errAborted
			}
		}

		if d.Email != "" {
			f.Email = d.Email
		}
		if newPhone != "" {
			f.Phone = newPhone
		}

		if err := h.Repository.Save(tx, f); err != nil {
			return err
		}
		updated = f.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error updating family"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(updated))
}

// BulkDeleteFamilies exclui várias famílias; a existência é tudo-ou-nada
func (h *Handler) BulkDeleteFamilies(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteFamiliesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}

	ids := make([]int64, 0, len(req.IDs))
	for _, id := range req.IDs {
		if !utils.IsBigInt(id) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the families IDs are invalid or was not provided correctly"))
			return
		}
		idNum, _ := strconv.ParseInt(id, 10, 64)
		ids = append(ids, idNum)
	}
	if len(ids) == 0 {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the families IDs are invalid or was not provided correctly"))
		return
	}

	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.CountByIDs(tx, ids)
		if err != nil {
			return err
		}
		if count != int64(len(ids)) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there are one or more families that do not exist in array"))
			return errAborted
		}
		deleted, err = h.Repository.DeleteByIDs(tx, ids)
		return err
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting families"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(deleted))
}

// DeleteFamily remove uma família pelo ID
func (h *Handler) DeleteFamily(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of family ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.CountByID(tx, idNum)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error family does not exist"))
			return errAborted
		}
		return h.Repository.DeleteByID(tx, idNum)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting family"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success("Family deleted successfully"))
}
