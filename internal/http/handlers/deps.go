package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"

	"bloodlink/internal/auth"
	"bloodlink/internal/config"
	"bloodlink/internal/repos"
	"bloodlink/internal/services"
)

type Deps struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	GeoHandler      *GeoHandler
	BlogHandler     *BlogHandler
	DonationHandler *DonationHandler
	FundHandler     *FundHandler
	PanelHandler    *PanelHandler

	// Roles backs the role gates; Codec backs the auth gate.
	Roles RoleSource
	Codec *auth.Codec
}

func NewDeps(db *mongo.Database, cfg config.Config) *Deps {
	codec := auth.NewCodec(cfg.TokenSecret, auth.DefaultTTL)

	userRepo := repos.NewUserRepo(db)
	donationRepo := repos.NewDonationRepo(db)
	blogRepo := repos.NewBlogRepo(db)
	fundRepo := repos.NewFundRepo(db)
	geoRepo := repos.NewGeoRepo(db)

	donationSvc := services.NewDonationService(donationRepo)
	panelSvc := services.NewPanelService(userRepo, donationRepo, fundRepo)
	payments := services.NewPaymentClient(cfg.PaymentURL, cfg.PaymentKey)

	return &Deps{
		AuthHandler:     &AuthHandler{Codec: codec, Production: cfg.Production()},
		UserHandler:     &UserHandler{Users: userRepo},
		GeoHandler:      &GeoHandler{Geo: geoRepo},
		BlogHandler:     &BlogHandler{Blogs: blogRepo},
		DonationHandler: &DonationHandler{Save: donationSvc, Repo: donationRepo},
		FundHandler:     &FundHandler{Funds: fundRepo, Payments: payments},
		PanelHandler:    &PanelHandler{Panel: panelSvc},
		Roles:           userRepo,
		Codec:           codec,
	}
}
