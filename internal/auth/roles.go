package auth

// Papéis aceitos pelo gate de autorização.
const (
	RoleDonorAdministrator = "DONOR_ADMINISTRATOR"
	RoleDonor              = "DONOR"
)
