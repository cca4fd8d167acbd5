package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"accessplus/internal/database"
	"accessplus/internal/domain"
	"accessplus/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "accessplus.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM payment_records")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	now := time.Now()

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := seedUser("usr_admin001", "Miguel Viejo", "mviejo@agenciagrow.cl", "rnta2014", domain.RoleAdmin)
	admin.AccessLevel = domain.LevelVIP
	admin.CardCategory = domain.CategoryUltraHighEnd
	admin.SubscriptionStatus = domain.SubscriptionActive
	admin.WalletQR = walletQR(admin.ID, admin.AccessLevel)
	admin.Country = "Chile"
	admin.Phone = "+56911112222"
	mustCreate(userRepo.Create(ctx, admin))
	log.Println("Admin created: mviejo@agenciagrow.cl / rnta2014")

	memberExpiry := now.AddDate(1, 0, 0)
	member := seedUser("usr_12345", "Carlos Santana", "carlos.santana@email.com", "password", domain.RoleUser)
	member.AccessLevel = domain.LevelGold
	member.CardCategory = domain.CategoryHighEnd
	member.SubscriptionStatus = domain.SubscriptionActive
	member.MembershipExpires = &memberExpiry
	member.WalletQR = walletQR(member.ID, member.AccessLevel)
	member.Country = "Perú"
	member.Phone = "+51987654321"
	mustCreate(userRepo.Create(ctx, member))
	log.Println("Member created: carlos.santana@email.com / password")

	venueUser := seedUser("usr_venue001", "Gerente Boragó", "contacto@borago.cl", "borago2024", domain.RoleVenue)
	venueUser.VenueID = "ven_cl_001"
	venueUser.Country = "Chile"
	mustCreate(userRepo.Create(ctx, venueUser))
	log.Println("Venue account created: contacto@borago.cl / borago2024")

	// ================== PAYMENT HISTORY ==================
	log.Println("Creating payment history...")

	payments := []domain.PaymentRecord{
		{ID: "pay_1", UserID: member.ID, Date: now.AddDate(0, -1, 0), Amount: 99, Plan: "Gold Access", InvoiceID: "INV-2024-001"},
		{ID: "pay_2", UserID: member.ID, Date: now.AddDate(0, -2, 0), Amount: 99, Plan: "Gold Access", InvoiceID: "INV-2024-002"},
		{ID: "pay_3", UserID: member.ID, Date: now.AddDate(0, -3, 0), Amount: 49, Plan: "Silver Access", InvoiceID: "INV-2024-003"},
	}
	for i := range payments {
		mustCreate(paymentRepo.Append(ctx, &payments[i]))
	}

	// ================== VENUES ==================
	log.Println("Creating venues...")

	venues := seedVenues(now)
	for i := range venues {
		mustCreate(venueRepo.Create(ctx, &venues[i]))
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	reservations := []domain.Reservation{
		{
			ID:        "res_1",
			VenueID:   "ven_cl_002",
			UserID:    member.ID,
			Date:      now.AddDate(0, 0, 3),
			Time:      "20:00",
			PartySize: 2,
			Status:    domain.ReservationConfirmed,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "res_2",
			VenueID:   "ven_cl_001",
			UserID:    member.ID,
			Date:      now.AddDate(0, 0, -20),
			Time:      "22:00",
			PartySize: 4,
			Status:    domain.ReservationConfirmed,
			Feedback:  &domain.Feedback{Rating: 5, Comment: "¡Una experiencia culinaria que nos cambió la vida!"},
			CreatedAt: now.AddDate(0, 0, -25),
			UpdatedAt: now.AddDate(0, 0, -20),
		},
		{
			ID:        "res_3",
			VenueID:   "ven_pe_002",
			UserID:    member.ID,
			Date:      now.AddDate(0, 0, -40),
			Time:      "21:00",
			PartySize: 2,
			Status:    domain.ReservationConfirmed,
			CreatedAt: now.AddDate(0, 0, -45),
			UpdatedAt: now.AddDate(0, 0, -40),
		},
		{
			ID:        "res_4",
			VenueID:   "ven_cl_001",
			UserID:    member.ID,
			Date:      now.AddDate(0, 0, 5),
			Time:      "20:30",
			PartySize: 3,
			Status:    domain.ReservationPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for i := range reservations {
		mustCreate(reservationRepo.Create(ctx, &reservations[i], ""))
	}

	// ================== NOTIFICATIONS ==================
	log.Println("Creating notifications...")

	notifications := []domain.Notification{
		{
			ID:        "ntf_1",
			UserID:    member.ID,
			Type:      domain.NotifReservation,
			Title:     "Reserva Confirmada",
			Message:   "Tu reserva en Tramonto Bar & Terrace para 2 personas ha sido confirmada.",
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:        "ntf_2",
			UserID:    member.ID,
			Type:      domain.NotifOffer,
			Title:     "Nueva Oferta VIP",
			Message:   "Boragó ahora ofrece acceso exclusivo a la mesa del chef para miembros VIP.",
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:        "ntf_3",
			UserID:    member.ID,
			Type:      domain.NotifSystem,
			Title:     "Tu membresía expira pronto",
			Message:   "Recuerda renovar tu plan Gold antes del fin de mes para no perder tus beneficios.",
			Read:      true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "ntf_4",
			UserID:    member.ID,
			Type:      domain.NotifReservation,
			Title:     "Reserva Rechazada",
			Message:   "Lamentablemente, Club La Feria no pudo confirmar tu reserva para el Sábado.",
			Read:      true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
	for i := range notifications {
		mustCreate(notificationRepo.Create(ctx, &notifications[i]))
	}

	log.Println("Seed complete.")
}

func seedUser(id, name, email, password string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	now := time.Now()
	return &domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func walletQR(userID string, level domain.AccessLevel) string {
	return "ACCESS+" + strings.ToUpper(userID) + "-" + strings.ToUpper(string(level))
}

func seedVenues(now time.Time) []domain.Venue {
	return []domain.Venue{
		{
			ID:          "ven_cl_001",
			Name:        "Boragó",
			Category:    domain.CategoryRestaurante,
			Location:    "Vitacura, Santiago",
			Address:     "Av. San Josemaría Escrivá de Balaguer 5970, Vitacura",
			Country:     "Chile",
			Image:       "https://picsum.photos/seed/borago/400/400",
			Rating:      4.9,
			Description: "Reconocido mundialmente por su cocina endémica, Boragó ofrece un viaje culinario único por el territorio chileno.",
			Coordinates: domain.Coordinates{Lat: -33.3909, Lng: -70.5658},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Acceso a mesa del chef", PlanRequired: domain.LevelVIP},
				{Description: "Copa de espumante de bienvenida", PlanRequired: domain.LevelGold},
			},
			Contact: &domain.VenueContact{Email: "contacto@borago.cl", Phone: "+56229538869"},
			Hours: []domain.VenueHours{
				{Day: "Lunes - Viernes", Time: "19:00 - 23:00"},
				{Day: "Sábado", Time: "13:00 - 16:00, 19:00 - 23:00"},
				{Day: "Domingo", Time: "Cerrado"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_cl_002",
			Name:        "Tramonto Bar & Terrace",
			Category:    domain.CategoryRooftop,
			Location:    "Las Condes, Santiago",
			Address:     "Av. Kennedy 4700, Vitacura, Santiago",
			Country:     "Chile",
			Image:       "https://picsum.photos/seed/tramonto/400/400",
			Rating:      4.8,
			Description: "Ubicado en el piso 17, ofrece vistas espectaculares de la cordillera y una coctelería de primer nivel.",
			Coordinates: domain.Coordinates{Lat: -33.4093, Lng: -70.5735},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Acceso sin fila", PlanRequired: domain.LevelGold},
				{Description: "Cocktail de autor de cortesía", PlanRequired: domain.LevelVIP},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_cl_003",
			Name:        "Club La Feria",
			Category:    domain.CategoryDiscoteca,
			Location:    "Bellavista, Santiago",
			Address:     "Constitución 275, Providencia, Santiago",
			Country:     "Chile",
			Image:       "https://picsum.photos/seed/laferia/400/400",
			Rating:      4.7,
			Description: "El templo de la música electrónica en Chile, con un sistema de sonido Funktion-One y DJs de talla mundial.",
			Coordinates: domain.Coordinates{Lat: -33.4316, Lng: -70.6323},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Cover de cortesía", PlanRequired: domain.LevelSilver},
				{Description: "Acceso a zona VIP", PlanRequired: domain.LevelVIP},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_cl_004",
			Name:        "Bocanáriz",
			Category:    domain.CategoryBar,
			Location:    "Lastarria, Santiago",
			Address:     "José Victorino Lastarria 276, Santiago",
			Country:     "Chile",
			Image:       "https://picsum.photos/seed/bocanariz/400/400",
			Rating:      4.9,
			Description: "Un paraíso para los amantes del vino, con más de 400 etiquetas chilenas y una gastronomía que marida a la perfección.",
			Coordinates: domain.Coordinates{Lat: -33.4395, Lng: -70.6368},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Degustación de vino premium", PlanRequired: domain.LevelGold},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_cl_005",
			Name:        "Sarita Colonia",
			Category:    domain.CategoryBar,
			Location:    "Bellavista, Santiago",
			Address:     "Loreto 40, Recoleta, Santiago",
			Country:     "Chile",
			Image:       "https://picsum.photos/seed/sarita/400/400",
			Rating:      4.6,
			Description: "Cocina peruana travesti en un espacio kitsch y vibrante. Una experiencia sensorial y teatral única en Santiago.",
			Coordinates: domain.Coordinates{Lat: -33.4300, Lng: -70.6319},
			Status:      domain.VenuePending,
			Benefits: []domain.Benefit{
				{Description: "Trago de bienvenida", PlanRequired: domain.LevelGold},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_cl_006",
			Name:        "Sala Gente",
			Category:    domain.CategoryDiscoteca,
			Location:    "Vitacura, Santiago",
			Address:     "Av. Vitacura 4111, Vitacura, Santiago",
			Country:     "Chile",
			Image:       "https://picsum.photos/seed/gente/400/400",
			Rating:      4.5,
			Description: "Una de las discotecas más exclusivas de la ciudad, frecuentada por celebridades y un público exigente.",
			Coordinates: domain.Coordinates{Lat: -33.3975, Lng: -70.5824},
			Status:      domain.VenueSuspended,
			Benefits: []domain.Benefit{
				{Description: "Acceso preferencial sin costo", PlanRequired: domain.LevelGold},
				{Description: "Botella de espumante en cumpleaños", PlanRequired: domain.LevelVIP},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_pe_001",
			Name:        "Central Restaurante",
			Category:    domain.CategoryRestaurante,
			Location:    "Barranco, Lima",
			Address:     "Av. Pedro de Osma 301, Barranco, Lima",
			Country:     "Perú",
			Image:       "https://picsum.photos/seed/central/400/400",
			Rating:      5.0,
			Description: "Considerado el mejor restaurante del mundo, Central ofrece una exploración de los ecosistemas peruanos a través de su menú.",
			Coordinates: domain.Coordinates{Lat: -12.1472, Lng: -77.0224},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Acceso a reserva prioritaria", PlanRequired: domain.LevelVIP},
				{Description: "Copa de vino de bienvenida", PlanRequired: domain.LevelGold},
			},
			Hours: []domain.VenueHours{
				{Day: "Lunes - Viernes", Time: "18:00 - 22:30"},
				{Day: "Sábado", Time: "12:00 - 15:00, 18:00 - 22:30"},
				{Day: "Domingo", Time: "Cerrado"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_pe_002",
			Name:        "Maido",
			Category:    domain.CategoryRestaurante,
			Location:    "Miraflores, Lima",
			Address:     "Calle San Martin 399, Miraflores, Lima",
			Country:     "Perú",
			Image:       "https://picsum.photos/seed/maido/400/400",
			Rating:      5.0,
			Description: "La cocina Nikkei llevada a su máxima expresión por el chef Mitsuharu Tsumura. Una fusión perfecta de sabores peruanos y japoneses.",
			Coordinates: domain.Coordinates{Lat: -12.1245, Lng: -77.0335},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Reserva garantizada con 48h de antelación", PlanRequired: domain.LevelVIP},
				{Description: "Sake de bienvenida", PlanRequired: domain.LevelGold},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_pe_003",
			Name:        "Carnaval Bar",
			Category:    domain.CategoryBar,
			Location:    "San Isidro, Lima",
			Address:     "Av. Pardo y Aliaga 662, San Isidro, Lima",
			Country:     "Perú",
			Image:       "https://picsum.photos/seed/carnaval/400/400",
			Rating:      4.9,
			Description: "Una experiencia de coctelería conceptual única, reconocida entre los mejores bares del mundo por su creatividad y técnica.",
			Coordinates: domain.Coordinates{Lat: -12.1044, Lng: -77.0355},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Cocktail exclusivo fuera de carta", PlanRequired: domain.LevelGold},
				{Description: "Acceso a la barra del bartender", PlanRequired: domain.LevelVIP},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "ven_pe_004",
			Name:        "Celeste Solar Bar",
			Category:    domain.CategoryRooftop,
			Location:    "Miraflores, Lima",
			Address:     "Jorge Basadre 367, San Isidro, Lima",
			Country:     "Perú",
			Image:       "https://picsum.photos/seed/celeste/400/400",
			Rating:      4.7,
			Description: "En el Hyatt Centric, este rooftop ofrece una piscina increíble, cocteles refrescantes y una vista panorámica de la ciudad.",
			Coordinates: domain.Coordinates{Lat: -12.1192, Lng: -77.0305},
			Status:      domain.VenueApproved,
			Benefits: []domain.Benefit{
				{Description: "Acceso sin fila", PlanRequired: domain.LevelSilver},
				{Description: "Piqueo de cortesía", PlanRequired: domain.LevelGold},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func mustCreate(err error) {
	if err != nil {
		log.Fatal("seed failed:", err)
	}
}
