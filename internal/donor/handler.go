package donor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RedeSolidaria/api-doacoes/internal/auth"
	"github.com/RedeSolidaria/api-doacoes/internal/httpresult"
	"github.com/RedeSolidaria/api-doacoes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// doadores com esse tipo recebem o papel de administrador no login
const adminDonorType = "A"

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

var errAborted = errors.New("aborted")

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}

	d, err := h.Repository.FindByEmail(h.DB, req.Login)
	if err != nil {
		httpresult.Write(w, http.StatusUnauthorized, httpresult.Fail("Error invalid credentials"))
		return
	}

	if !utils.CheckPassword(d.Password, req.Password) {
		httpresult.Write(w, http.StatusUnauthorized, httpresult.Fail("Error invalid credentials"))
		return
	}

	role := auth.RoleDonor
	if d.DonorType == adminDonorType {
		role = auth.RoleDonorAdministrator
	}
	token, err := auth.GenerateToken(d.ID, role)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error generating token"))
		return
	}

	httpresult.Write(w, http.StatusOK, httpresult.Success(map[string]string{"token": token}))
}

// ListDonors retorna todos os doadores com a empresa aninhada quando houver
func (h *Handler) ListDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading donors"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(ToResponses(donors)))
}

// GetDonorByID retorna um doador pelo ID
func (h *Handler) GetDonorByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	d, err := h.Repository.FindByID(h.DB, idNum)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error donor does not exist"))
		return
	}
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading donor by ID"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(d.ToResponse()))
}

// CreateDonor valida e cadastra um doador, com empresa opcional criada antes
func (h *Handler) CreateDonor(w http.ResponseWriter, r *http.Request) {
	var req createDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	d := req.NewDonorData
	e := req.NewDonorEnterpriseData

	var created Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if utils.IsNullOrEmpty(d.Email) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of email is invalid"))
			return errAborted
		} else if len(d.Email) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of email is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.Password) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of password is invalid"))
			return errAborted
		} else if len(d.Password) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of password is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.DonationPeriod) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation period is invalid"))
			return errAborted
		} else if len(d.DonationPeriod) > 20 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation period is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.DonorType) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor type is invalid"))
			return errAborted
		} else if len(d.DonorType) > 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor type is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.Name) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is invalid"))
			return errAborted
		} else if len(d.Name) > 100 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is too large"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.Phone) || !utils.IsValidPhone(d.Phone) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of phone is invalid"))
			return errAborted
		} else if len(d.Phone) > 20 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of phone is too large"))
			return errAborted
		}
		d.Phone = utils.RemoveFormattingPhone(d.Phone)

		if d.SocialNetwork != "" && len(d.SocialNetwork) > 50 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of social network is too large"))
			return errAborted
		}

		var birthDate *time.Time
		if d.BirthDate != "" {
			if !utils.IsDateValid(d.BirthDate) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of birth date is invalid"))
				return errAborted
			}
			parsed, _ := utils.ParseDate(d.BirthDate)
			if parsed.After(time.Now()) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of birth date is in the future"))
				return errAborted
			}
			birthDate = &parsed
		}

		if e != nil {
			if utils.IsNullOrEmpty(e.ResponsibleName) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of responsible name is invalid"))
				return errAborted
			} else if len(e.ResponsibleName) > 100 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of responsible name is too large"))
				return errAborted
			}

			if utils.IsNullOrEmpty(e.EnterpriseName) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of enterprise name is invalid"))
				return errAborted
			} else if len(e.EnterpriseName) > 100 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of enterprise name is too large"))
				return errAborted
			}

			if utils.IsNullOrEmpty(e.Cnpj) || !utils.IsValidCnpj(e.Cnpj) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cnpj is invalid"))
				return errAborted
			} else if len(e.Cnpj) > 14 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cnpj is too large"))
				return errAborted
			}
			e.Cnpj = utils.RemoveFormattingCnpj(e.Cnpj)

			if utils.IsNullOrEmpty(e.Cep) || !utils.IsValidCep(e.Cep) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is invalid"))
				return errAborted
			} else if len(e.Cep) > 8 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is too large"))
				return errAborted
			}
			e.Cep = utils.RemoveFormattingCep(e.Cep)

			if utils.IsNullOrEmpty(e.City) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is invalid"))
				return errAborted
			} else if len(e.City) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is too large"))
				return errAborted
			}

			if utils.IsNullOrEmpty(e.Street) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of street is invalid"))
				return errAborted
			} else if len(e.Street) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of street is too large"))
				return errAborted
			}

			if utils.IsNullOrEmpty(e.EnterpriseNumber) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of enterprise number is invalid"))
				return errAborted
			} else if len(e.EnterpriseNumber) > 6 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of enterprise number is too large"))
				return errAborted
			}

			if utils.IsNullOrEmpty(e.Neighborhood) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of neighborhood is invalid"))
				return errAborted
			} else if len(e.Neighborhood) > 100 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of neighborhood is too large"))
				return errAborted
			}
		}

		count, err := h.Repository.CountByEmail(tx, d.Email)
		if err != nil {
			return err
		}
		if count > 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor already using this email"))
			return errAborted
		}

		count, err = h.Repository.CountByPhone(tx, d.Phone)
		if err != nil {
			return err
		}
		if count > 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor already using this phone number"))
			return errAborted
		}

		if e != nil {
			count, err = h.Repository.CountEnterpriseByCnpj(tx, e.Cnpj)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor already using this cnpj"))
				return errAborted
			}
		}

		hash, err := utils.HashPassword(d.Password)
		if err != nil {
			return err
		}

		newDonor := Donor{
			Email:          d.Email,
			Password:       hash,
			DonationPeriod: d.DonationPeriod,
			DonorType:      d.DonorType,
			Name:           d.Name,
			Phone:          d.Phone,
			SocialNetwork:  optional(d.SocialNetwork),
			BirthDate:      birthDate,
		}

		if e != nil {
			enterprise := DonorEnterprise{
				ResponsibleName:  e.ResponsibleName,
				EnterpriseName:   e.EnterpriseName,
				Cnpj:             e.Cnpj,
				Cep:              e.Cep,
				City:             e.City,
				Street:           e.Street,
				EnterpriseNumber: e.EnterpriseNumber,
				Neighborhood:     e.Neighborhood,
			}
			if err := h.Repository.CreateEnterprise(tx, &enterprise); err != nil {
				return err
			}
			newDonor.IDEnterprise = &enterprise.ID
			newDonor.Enterprise = &enterprise
		}

		if err := h.Repository.Create(tx, &newDonor); err != nil {
			return err
		}
		created = newDonor.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error creating donor"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(created))
}

// UpdateDonor altera apenas os campos enviados; a empresa só pode ser editada
// quando o doador já possui uma
func (h *Handler) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	var req updateDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	d := req.NewDonorData
	e := req.NewDonorEnterpriseData
	if e != nil && e.isEmpty() {
		e = nil
	}

	var updated Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		current, err := h.Repository.FindByID(tx, idNum)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error donor does not exist"))
			return errAborted
		}
		if err != nil {
			return err
		}

		if d.Email != "" && len(d.Email) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of email is too large"))
			return errAborted
		}

		if d.Password != "" && len(d.Password) > 255 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of password is too large"))
			return errAborted
		}

		if d.DonationPeriod != "" && len(d.DonationPeriod) > 20 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation period is too large"))
			return errAborted
		}

		if d.DonorType != "" && len(d.DonorType) > 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor type is too large"))
			return errAborted
		}

		if d.Name != "" && len(d.Name) > 100 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of name is too large"))
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

		if d.SocialNetwork != "" && len(d.SocialNetwork) > 50 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of social network is too large"))
			return errAborted
		}

		var birthDate *time.Time
		if d.BirthDate != "" {
			if !utils.IsDateValid(d.BirthDate) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of birth date is invalid"))
				return errAborted
			}
			parsed, _ := utils.ParseDate(d.BirthDate)
			if parsed.After(time.Now()) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of birth date is in the future"))
				return errAborted
			}
			birthDate = &parsed
		}

		if e != nil {
			if e.ResponsibleName != "" && len(e.ResponsibleName) > 100 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of responsible name is too large"))
				return errAborted
			}

			if e.EnterpriseName != "" && len(e.EnterpriseName) > 100 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of enterprise name is too large"))
				return errAborted
			}

			if e.Cnpj != "" {
				if len(e.Cnpj) > 14 {
					httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cnpj is too large"))
					return errAborted
				} else if !utils.IsValidCnpj(e.Cnpj) {
					httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cnpj is invalid"))
					return errAborted
				}
				e.Cnpj = utils.RemoveFormattingCnpj(e.Cnpj)
			}

			if e.Cep != "" {
				if len(e.Cep) > 8 {
					httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is too large"))
					return errAborted
				} else if !utils.IsValidCep(e.Cep) {
					httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of cep is invalid"))
					return errAborted
				}
				e.Cep = utils.RemoveFormattingCep(e.Cep)
			}

			if e.City != "" && len(e.City) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of city is too large"))
				return errAborted
			}

			if e.Street != "" && len(e.Street) > 60 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of street is too large"))
				return errAborted
			}

			if e.EnterpriseNumber != "" && len(e.EnterpriseNumber) > 6 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of enterprise number is too large"))
				return errAborted
			}

			if e.Neighborhood != "" && len(e.Neighborhood) > 100 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of neighborhood is too large"))
				return errAborted
			}
		}

		if d.Email != "" && d.Email != current.Email {
			count, err := h.Repository.CountByEmail(tx, d.Email)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor already using this email"))
				return errAborted
			}
		}

		if newPhone != "" && newPhone != current.Phone {
			count, err := h.Repository.CountByPhone(tx, newPhone)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor already using this phone number"))
				return errAborted
			}
		}

		if e != nil && e.Cnpj != "" && (current.Enterprise == nil || current.Enterprise.Cnpj != e.Cnpj) {
			count, err := h.Repository.CountEnterpriseByCnpj(tx, e.Cnpj)
			if err != nil {
				return err
			}
			if count > 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor already using this cnpj"))
				return errAborted
			}
		}

		// um doador comum nunca vira doador empresa
		if current.Enterprise == nil && e != nil {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error a donor cannot be updated to become a donor enterprise"))
			return errAborted
		}

		if d.Email != "" {
			current.Email = d.Email
		}
		if d.Password != "" {
			hash, err := utils.HashPassword(d.Password)
			if err != nil {
				return err
			}
			current.Password = hash
		}
		if d.DonationPeriod != "" {
			current.DonationPeriod = d.DonationPeriod
		}
		if d.DonorType != "" {
			current.DonorType = d.DonorType
		}
		if d.Name != "" {
			current.Name = d.Name
		}
		if newPhone != "" {
			current.Phone = newPhone
		}
		if d.SocialNetwork != "" {
			current.SocialNetwork = optional(d.SocialNetwork)
		}
		if birthDate != nil {
			current.BirthDate = birthDate
		}

		if e != nil && current.Enterprise != nil {
			if e.ResponsibleName != "" {
				current.Enterprise.ResponsibleName = e.ResponsibleName
			}
			if e.EnterpriseName != "" {
				current.Enterprise.EnterpriseName = e.EnterpriseName
			}
			if e.Cnpj != "" {
				current.Enterprise.Cnpj = e.Cnpj
			}
			if e.Cep != "" {
				current.Enterprise.Cep = e.Cep
			}
			if e.City != "" {
				current.Enterprise.City = e.City
			}
			if e.Street != "" {
				current.Enterprise.Street = e.Street
			}
			if e.EnterpriseNumber != "" {
				current.Enterprise.EnterpriseNumber = e.EnterpriseNumber
			}
			if e.Neighborhood != "" {
				current.Enterprise.Neighborhood = e.Neighborhood
			}
			if err := h.Repository.SaveEnterprise(tx, current.Enterprise); err != nil {
				return err
			}
		}

		if err := h.Repository.Save(tx, current); err != nil {
			return err
		}
		updated = current.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error updating donor"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(updated))
}

// BulkDeleteDonors exclui vários doadores; a existência é tudo-ou-nada
func (h *Handler) BulkDeleteDonors(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteDonorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}

	ids := make([]int64, 0, len(req.IDs))
	for _, id := range req.IDs {
		if !utils.IsBigInt(id) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the donors IDs are invalid or was not provided correctly"))
			return
		}
		idNum, _ := strconv.ParseInt(id, 10, 64)
		ids = append(ids, idNum)
	}
	if len(ids) == 0 {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the donors IDs are invalid or was not provided correctly"))
		return
	}

	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.CountByIDs(tx, ids)
		if err != nil {
			return err
		}
		if count != int64(len(ids)) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there are one or more donors that do not exist in array"))
			return errAborted
		}
		deleted, err = h.Repository.DeleteByIDs(tx, ids)
		return err
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting donors"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(deleted))
}

// DeleteDonor remove um doador pelo ID
func (h *Handler) DeleteDonor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.CountByID(tx, idNum)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error donor does not exist"))
			return errAborted
		}
		return h.Repository.DeleteByID(tx, idNum)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting donor"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success("Donor deleted successfully"))
}
