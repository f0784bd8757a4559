package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/RedeSolidaria/api-doacoes/internal/auth"
	"github.com/RedeSolidaria/api-doacoes/internal/donation"
	"github.com/RedeSolidaria/api-doacoes/internal/donor"
	"github.com/RedeSolidaria/api-doacoes/internal/family"
	"github.com/RedeSolidaria/api-doacoes/internal/itemdonation"
	"github.com/RedeSolidaria/api-doacoes/internal/pixdonation"
	"github.com/RedeSolidaria/api-doacoes/internal/product"
	"github.com/RedeSolidaria/api-doacoes/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&family.Family{},
		&donor.DonorEnterprise{},
		&donor.Donor{},
		&donation.Donation{},
		&pixdonation.PixDonation{},
		&product.Product{},
		&itemdonation.ItemDonation{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	familyHandler := family.NewHandler(database)
	donorHandler := donor.NewHandler(database)
	donationHandler := donation.NewHandler(database)
	pixDonationHandler := pixdonation.NewHandler(database)
	itemDonationHandler := itemdonation.NewHandler(database)
	productHandler := product.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Login fica fora do middleware de autenticação
	r.HandleFunc("/donors/login", donorHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.Authenticate)
	api.Use(auth.RequireRoles(auth.RoleDonorAdministrator))

	// Rotas de famílias
	api.HandleFunc("/families", familyHandler.ListFamilies).Methods("GET")
	api.HandleFunc("/families", familyHandler.CreateFamily).Methods("POST")
	api.HandleFunc("/families", familyHandler.BulkDeleteFamilies).Methods("DELETE")
	api.HandleFunc("/families/{id}", familyHandler.GetFamilyByID).Methods("GET")
	api.HandleFunc("/families/{id}", familyHandler.UpdateFamily).Methods("PUT")
	api.HandleFunc("/families/{id}", familyHandler.DeleteFamily).Methods("DELETE")

	// Rotas de doadores
	api.HandleFunc("/donors", donorHandler.ListDonors).Methods("GET")
	api.HandleFunc("/donors", donorHandler.CreateDonor).Methods("POST")
	api.HandleFunc("/donors", donorHandler.BulkDeleteDonors).Methods("DELETE")
	api.HandleFunc("/donors/{id}", donorHandler.GetDonorByID).Methods("GET")
	api.HandleFunc("/donors/{id}", donorHandler.UpdateDonor).Methods("PUT")
	api.HandleFunc("/donors/{id}", donorHandler.DeleteDonor).Methods("DELETE")

	// Rotas de doações; toReceive precisa vir antes de {id}
	api.HandleFunc("/donations", donationHandler.ListDonations).Methods("GET")
	api.HandleFunc("/donations", donationHandler.CreateDonation).Methods("POST")
	api.HandleFunc("/donations", donationHandler.BulkDeleteDonations).Methods("DELETE")
	api.HandleFunc("/donations/toReceive", donationHandler.ListToReceiveDonations).Methods("GET")
	api.HandleFunc("/donations/{id}", donationHandler.GetDonationByID).Methods("GET")
	api.HandleFunc("/donations/{id}", donationHandler.UpdateDonation).Methods("PUT")
	api.HandleFunc("/donations/{id}", donationHandler.DeleteDonation).Methods("DELETE")

	// Rotas do registro PIX
	api.HandleFunc("/pix-donations", pixDonationHandler.GetPixDonation).Methods("GET")
	api.HandleFunc("/pix-donations", pixDonationHandler.CreatePixDonation).Methods("POST")
	api.HandleFunc("/pix-donations", pixDonationHandler.UpdatePixDonation).Methods("PUT")
	api.HandleFunc("/pix-donations", pixDonationHandler.DeletePixDonation).Methods("DELETE")

	// Rotas de itens de doação
	api.HandleFunc("/items-donations", itemDonationHandler.ListItemsDonations).Methods("GET")
	api.HandleFunc("/items-donations", itemDonationHandler.CreateItemDonation).Methods("POST")
	api.HandleFunc("/items-donations", itemDonationHandler.BulkDeleteItemsDonations).Methods("DELETE")
	api.HandleFunc("/items-donations/{id_donation}/{id_product}", itemDonationHandler.GetItemDonationByKey).Methods("GET")
	api.HandleFunc("/items-donations/{id_donation}/{id_product}", itemDonationHandler.UpdateItemDonation).Methods("PUT")
	api.HandleFunc("/items-donations/{id_donation}/{id_product}", itemDonationHandler.DeleteItemDonation).Methods("DELETE")
	api.HandleFunc("/items-donations/{id_donation}", itemDonationHandler.ListItemsByDonation).Methods("GET")

	// Rotas de produtos
	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.GetProductByID).Methods("GET")

	handler := cors.AllowAll().Handler(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
