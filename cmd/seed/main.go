package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	cities := repository.NewCityRepository(db)
	amenities := repository.NewAmenityRepository(db)
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)
	settings := repository.NewSettingsRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := mustUser(ctx, users, "admin@bookingmvp.com", "admin123", domain.TypeAdmin, "Site", "Admin")
	owner := mustUser(ctx, users, "owner@grandpalace.com", "owner123", domain.TypeHotelOwner, "Olivia", "Grand")
	mustUser(ctx, users, "guest@example.com", "guest123", domain.TypeCustomer, "Gordon", "Guest")
	log.Println("Admin created:", admin.Email, "/ admin123")

	// ================== CITIES ==================
	log.Println("Creating cities...")
	cityRows := []domain.City{
		{Name: "Paris", Country: "France", Timezone: "Europe/Paris", IsPopular: true},
		{Name: "Barcelona", Country: "Spain", Timezone: "Europe/Madrid", IsPopular: true},
		{Name: "Istanbul", Country: "Turkey", Timezone: "Europe/Istanbul", IsPopular: true},
		{Name: "Almaty", Country: "Kazakhstan", Timezone: "Asia/Almaty"},
	}
	for i := range cityRows {
		if err := cities.Create(ctx, &cityRows[i]); err != nil {
			log.Fatal("city seed failed:", err)
		}
	}

	// ================== AMENITIES ==================
	log.Println("Creating amenities...")
	amenityRows := []domain.Amenity{
		{Name: "Free WiFi", Category: domain.AmenityConnectivity, Icon: "wifi"},
		{Name: "Swimming Pool", Category: domain.AmenityWellness, Icon: "pool", IsPremium: true},
		{Name: "Fitness Center", Category: domain.AmenityWellness, Icon: "gym"},
		{Name: "Restaurant", Category: domain.AmenityFoodDrink, Icon: "restaurant"},
		{Name: "Airport Shuttle", Category: domain.AmenityGeneral, Icon: "shuttle", IsPremium: true},
		{Name: "Family Rooms", Category: domain.AmenityFamily, Icon: "family"},
	}
	for i := range amenityRows {
		if err := amenities.Create(ctx, &amenityRows[i]); err != nil {
			log.Fatal("amenity seed failed:", err)
		}
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	roomTypes := []domain.RoomType{
		{Name: domain.RoomStandard, DisplayName: "Standard Room", MaxOccupancy: 2, MaxAdults: 2, BedType: domain.BedDouble, BedCount: 1},
		{Name: domain.RoomDeluxe, DisplayName: "Deluxe Room", MaxOccupancy: 3, MaxAdults: 2, MaxChildren: 1, BedType: domain.BedQueen, BedCount: 1, HasCityView: true},
		{Name: domain.RoomSuite, DisplayName: "Suite", MaxOccupancy: 4, MaxAdults: 3, MaxChildren: 2, BedType: domain.BedKing, BedCount: 1, HasBalcony: true},
		{Name: domain.RoomFamily, DisplayName: "Family Room", MaxOccupancy: 5, MaxAdults: 2, MaxChildren: 3, BedType: domain.BedDouble, BedCount: 2},
	}
	for i := range roomTypes {
		if err := rooms.CreateRoomType(ctx, &roomTypes[i]); err != nil {
			log.Fatal("room type seed failed:", err)
		}
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels...")
	hotelRows := []domain.Hotel{
		{
			Name:             "Grand Palace",
			Slug:             "grand-palace-paris",
			HotelType:        domain.HotelStandard,
			CityID:           cityRows[0].ID,
			Address:          "1 Rue de Rivoli",
			Description:      "A classic five-star stay in the heart of Paris.",
			ShortDescription: "Five-star classic near the Louvre.",
			StarRating:       5,
			BasePrice:        220,
			Currency:         "EUR",
			OwnerID:          owner.ID,
			CheckInTime:      "15:00",
			CheckOutTime:     "11:00",
			SmokingPolicy:    domain.SmokingForbidden,
			IsActive:         true,
			IsVerified:       true,
			IsFeatured:       true,
		},
		{
			Name:          "Rambla Suites",
			Slug:          "rambla-suites-barcelona",
			HotelType:     domain.HotelApartment,
			CityID:        cityRows[1].ID,
			Address:       "La Rambla 45",
			Description:   "Bright apartments a short walk from the old town.",
			StarRating:    4,
			BasePrice:     140,
			Currency:      "EUR",
			OwnerID:       owner.ID,
			CheckInTime:   "14:00",
			CheckOutTime:  "12:00",
			SmokingPolicy: domain.SmokingDesignated,
			IsActive:      true,
			IsVerified:    true,
		},
	}
	for i := range hotelRows {
		if err := hotels.Create(ctx, &hotelRows[i]); err != nil {
			log.Fatal("hotel seed failed:", err)
		}
		if err := hotels.ReplaceAmenities(ctx, hotelRows[i].ID, []int64{
			amenityRows[0].ID, amenityRows[2].ID, amenityRows[3].ID,
		}); err != nil {
			log.Fatal("hotel amenity seed failed:", err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	weekend := 130.0
	peak := 150.0
	for _, h := range hotelRows {
		for f := 1; f <= 2; f++ {
			for n := 1; n <= 3; n++ {
				floor := f
				room := domain.Room{
					HotelID:         h.ID,
					RoomTypeID:      roomTypes[(f+n)%len(roomTypes)].ID,
					RoomNumber:      fmt.Sprintf("%d0%d", f, n),
					Floor:           &floor,
					BasePrice:       h.BasePrice * (1 + 0.1*float64(f-1)),
					WeekendPrice:    &weekend,
					PeakSeasonPrice: &peak,
					IsAvailable:     true,
				}
				if err := rooms.Create(ctx, &room); err != nil {
					log.Fatal("room seed failed:", err)
				}
			}
		}
	}

	// ================== SETTINGS & TEMPLATES ==================
	log.Println("Seeding settings and email templates...")
	if _, err := settings.GetOrCreate(ctx); err != nil {
		log.Fatal("settings seed failed:", err)
	}
	templates := []domain.EmailTemplate{
		{
			Name:     domain.TemplateBookingConfirmation,
			Subject:  "Booking {{booking_reference}} received",
			Content:  "<p>Hi {{guest_name}}, your booking {{booking_reference}} for {{check_in}} to {{check_out}} is in. Confirmation code: {{confirmation_code}}. Total: {{total_amount}}.</p>",
			IsActive: true,
		},
		{
			Name:     domain.TemplateBookingCancellation,
			Subject:  "Booking {{booking_reference}} cancelled",
			Content:  "<p>Hi {{guest_name}}, booking {{booking_reference}} was cancelled. Reason: {{reason}}.</p>",
			IsActive: true,
		},
		{
			Name:     domain.TemplatePaymentConfirmation,
			Subject:  "Payment {{payment_id}} received",
			Content:  "<p>We received your payment of {{amount}} {{currency}}.</p>",
			IsActive: true,
		},
		{
			Name:     domain.TemplateReviewRequest,
			Subject:  "How was your stay?",
			Content:  "<p>Hi {{guest_name}}, we hope you enjoyed your stay (booking {{booking_reference}}). Leave a review and help other travellers.</p>",
			IsActive: true,
		},
	}
	for i := range templates {
		if err := settings.UpsertTemplate(ctx, &templates[i]); err != nil {
			log.Fatal("template seed failed:", err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@bookingmvp.com / admin123")
	log.Println("Owner: owner@grandpalace.com / owner123")
	log.Println("Guest: guest@example.com / guest123")
}

func mustUser(ctx context.Context, users *repository.UserRepository, email, password string, t domain.UserType, first, last string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hashing failed:", err)
	}
	u := &domain.User{
		Email:             email,
		PasswordHash:      string(hash),
		UserType:          t,
		FirstName:         first,
		LastName:          last,
		PreferredCurrency: "USD",
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal("user seed failed:", err)
	}
	return u
}
