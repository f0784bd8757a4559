package donation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RedeSolidaria/api-doacoes/internal/donor"
	"github.com/RedeSolidaria/api-doacoes/internal/httpresult"
	"github.com/RedeSolidaria/api-doacoes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler valida e persiste doações; consulta o repositório de doadores
// para garantir a existência do dono
type Handler struct {
	DB              *gorm.DB
	Repository      Repository
	DonorRepository donor.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:              db,
		Repository:      NewRepository(),
		DonorRepository: donor.NewRepository(),
	}
}

var errAborted = errors.New("aborted")

// ListDonations retorna todas as doações
func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading donations"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(ToResponses(donations)))
}

// ListToReceiveDonations retorna as doações ainda não recebidas
func (h *Handler) ListToReceiveDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Repository.ListToReceive(h.DB)
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading to receive donations"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(ToResponses(donations)))
}

// GetDonationByID retorna uma doação pelo ID
func (h *Handler) GetDonationByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	d, err := h.Repository.FindByID(h.DB, idNum)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error donation does not exist"))
		return
	}
	if err != nil {
		httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error loading donation by ID"))
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(d.ToResponse()))
}

// CreateDonation valida e cadastra uma doação vinculada a um doador existente
func (h *Handler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	d := req.NewDonationData

	var created Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if utils.IsNullOrEmpty(d.IDDonor) || !utils.IsBigInt(d.IDDonor) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of ID donor is invalid"))
			return errAborted
		}
		idDonor, _ := strconv.ParseInt(d.IDDonor, 10, 64)

		count, err := h.DonorRepository.CountByID(tx, idDonor)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error donor does not exist"))
			return errAborted
		}

		if utils.IsNullOrEmpty(d.DonationType) || len(d.DonationType) > 1 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation type is invalid"))
			return errAborted
		}

		var donationDate *time.Time
		if d.DonationDate != "" {
			if !utils.IsDateValid(d.DonationDate) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation date is invalid"))
				return errAborted
			}
			parsed, _ := utils.ParseDate(d.DonationDate)
			donationDate = &parsed
		}

		var scheduledDate *time.Time
		if d.ScheduledDate != "" {
			if !utils.IsDateValid(d.ScheduledDate) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of scheduled date is invalid"))
				return errAborted
			}
			parsed, _ := utils.ParseDate(d.ScheduledDate)
			scheduledDate = &parsed
		}

		if d.DonationValue != nil && *d.DonationValue <= 0 {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation value is less than or equal to zero"))
			return errAborted
		}

		if d.DonationReceived == nil {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation received is invalid"))
			return errAborted
		}

		newDonation := Donation{
			IDDonor:          idDonor,
			DonationType:     d.DonationType,
			DonationDate:     donationDate,
			ScheduledDate:    scheduledDate,
			DonationValue:    d.DonationValue,
			DonationReceived: *d.DonationReceived,
		}
		if err := h.Repository.Create(tx, &newDonation); err != nil {
			return err
		}
		created = newDonation.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error creating donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(created))
}

// UpdateDonation altera apenas os campos enviados, revalidando o doador se mudar
func (h *Handler) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	var req updateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}
	d := req.NewDonationData

	var updated Response
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		current, err := h.Repository.FindByID(tx, idNum)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error donation does not exist"))
			return errAborted
		}
		if err != nil {
			return err
		}

		if d.IDDonor != "" {
			if !utils.IsBigInt(d.IDDonor) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donor ID is invalid or was not provided correctly"))
				return errAborted
			}
			idDonor, _ := strconv.ParseInt(d.IDDonor, 10, 64)

			count, err := h.DonorRepository.CountByID(tx, idDonor)
			if err != nil {
				return err
			}
			if count != 1 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of ID donor does not exist"))
				return errAborted
			}
			current.IDDonor = idDonor
		}

		if d.DonationType != "" {
			if len(d.DonationType) > 1 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation type is too large"))
				return errAborted
			}
			current.DonationType = d.DonationType
		}

		if d.DonationDate != "" {
			if !utils.IsDateValid(d.DonationDate) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation date is invalid"))
				return errAborted
			}
			parsed, _ := utils.ParseDate(d.DonationDate)
			current.DonationDate = &parsed
		}

		if d.ScheduledDate != "" {
			if !utils.IsDateValid(d.ScheduledDate) {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of scheduled date is invalid"))
				return errAborted
			}
			parsed, _ := utils.ParseDate(d.ScheduledDate)
			current.ScheduledDate = &parsed
		}

		if d.DonationValue != nil {
			if *d.DonationValue <= 0 {
				httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation value is less than or equal to zero"))
				return errAborted
			}
			current.DonationValue = d.DonationValue
		}

		if d.DonationReceived != nil {
			current.DonationReceived = *d.DonationReceived
		}

		if err := h.Repository.Save(tx, current); err != nil {
			return err
		}
		updated = current.ToResponse()
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error updating donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(updated))
}

// BulkDeleteDonations exclui várias doações; a existência é tudo-ou-nada
func (h *Handler) BulkDeleteDonations(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteDonationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error invalid request payload"))
		return
	}

	ids := make([]int64, 0, len(req.IDs))
	for _, id := range req.IDs {
		if !utils.IsBigInt(id) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the donations IDs are invalid or was not provided correctly"))
			return
		}
		idNum, _ := strconv.ParseInt(id, 10, 64)
		ids = append(ids, idNum)
	}
	if len(ids) == 0 {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the donations IDs are invalid or was not provided correctly"))
		return
	}

	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.CountByIDs(tx, ids)
		if err != nil {
			return err
		}
		if count != int64(len(ids)) {
			httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error there are one or more donations that do not exist in array"))
			return errAborted
		}
		deleted, err = h.Repository.DeleteByIDs(tx, ids)
		return err
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting donations"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success(deleted))
}

// DeleteDonation remove uma doação pelo ID
func (h *Handler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if utils.IsNullOrEmpty(id) || !utils.IsBigInt(id) {
		httpresult.Write(w, http.StatusBadRequest, httpresult.Fail("Error the value of donation ID is invalid or was not provided correctly"))
		return
	}
	idNum, _ := strconv.ParseInt(id, 10, 64)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		count, err := h.Repository.CountByID(tx, idNum)
		if err != nil {
			return err
		}
		if count != 1 {
			httpresult.Write(w, http.StatusNotFound, httpresult.Fail("Error donation does not exist"))
			return errAborted
		}
		return h.Repository.DeleteByID(tx, idNum)
	})
	if err != nil {
		if !errors.Is(err, errAborted) {
			httpresult.Write(w, http.StatusInternalServerError, httpresult.Fail("Error deleting donation"))
		}
		return
	}
	httpresult.Write(w, http.StatusOK, httpresult.Success("Donation deleted successfully"))
}
