package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/projectveo/backend/api"
	"github.com/projectveo/backend/auth"
	"github.com/projectveo/backend/config"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"github.com/projectveo/backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	production := config.GetString(c, "APP_ENV", "development") == "production"
	if !production {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		zlog.Info().Msg("Generating models and query helpers...")
		if err := currentDB.Migrate(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("Error migrating database")
		}
		if err := models.GenerateModels(db, config.GetString(c, "GENERATE_OUT_PATH", "")); err != nil {
			zlog.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	if err := currentDB.Migrate(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("Error migrating database")
	}

	tokens, err := newTokenIssuer(ctx, c, production)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error loading JWT secret")
	}

	// If seeding the admin account, create it and exit
	if config.GetBool(c, "SEED_ADMIN", false) {
		accounts := services.NewAccounts(currentDB.UserRepo(), auth.NewBcryptHasher(config.GetInt(c, "BCRYPT_COST", 0)), tokens, false)
		email := config.GetString(c, "ADMIN_EMAIL", "")
		created, err := accounts.SeedAdmin(ctx, email, config.GetString(c, "ADMIN_NAME", "Admin"), config.GetString(c, "ADMIN_PASSWORD", ""))
		if err != nil {
			zlog.Fatal().Err(err).Msg("Error seeding admin")
		}
		if created {
			zlog.Info().Str("email", email).Msg("Admin account created")
		} else {
			zlog.Info().Str("email", email).Msg("Admin account already exists")
		}
		return
	}

	opts := []api.Option{
		api.WithConfig(c),
		api.WithTokenIssuer(tokens),
		api.WithNotifier(newNotifier(c)),
	}
	if bucket := config.GetString(c, "S3_BUCKET", ""); bucket != "" {
		sink, err := services.NewS3BlobSink(ctx, services.S3Config{
			Bucket:        bucket,
			Region:        config.GetString(c, "S3_REGION", ""),
			Endpoint:      config.GetString(c, "S3_ENDPOINT", ""),
			PublicBaseURL: config.GetString(c, "S3_PUBLIC_BASE_URL", ""),
			PublicRead:    config.GetBool(c, "S3_PUBLIC_READ", false),
		})
		if err != nil {
			zlog.Fatal().Err(err).Msg("Error configuring blob storage")
		}
		opts = append(opts, api.WithBlobSink(sink))
	} else {
		zlog.Warn().Msg("S3_BUCKET not set, file and SRS uploads are disabled")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, opts...)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects to Postgres, attaching a read replica when one is configured.
func openDatabase(c map[string]string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  databaseDSN(c),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, err
	}

	if replica := config.GetString(c, "DB_READ_REPLICA_URL", ""); replica != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(replica)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
		zlog.Info().Msg("Read replica registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}
	return db, nil
}

func databaseDSN(c map[string]string) string {
	if url := config.GetString(c, "DATABASE_URL", ""); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "projectveo"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "disable"),
	)
}

// newTokenIssuer resolves the signing secret. The built-in fallback is refused in production.
func newTokenIssuer(ctx context.Context, c map[string]string, production bool) (*auth.TokenIssuer, error) {
	var reader config.ParameterReader
	if config.GetString(c, "JWT_SECRET_KEY", "") == "" && config.GetString(c, "JWT_SECRET_SSM_PARAM", "") != "" {
		client, err := config.NewParameterReader(ctx, config.GetString(c, "AWS_REGION", ""))
		if err != nil {
			return nil, err
		}
		reader = client
	}

	secret, err := config.ResolveJWTSecret(ctx, c, reader)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenIssuer(secret)
	if tokens.UsesDefaultSecret() {
		if production {
			return nil, errs.NewConfigMissingError("JWT_SECRET_KEY")
		}
		zlog.Warn().Msg("JWT_SECRET_KEY not set, signing tokens with the built-in development secret")
	}
	return tokens, nil
}

// newNotifier builds the booking notification channels that are configured.
func newNotifier(c map[string]string) *services.MultiNotifier {
	var notifiers []services.BookingNotifier

	email := services.EmailConfig{
		APIKey:     config.GetString(c, "RESEND_API_KEY", ""),
		FromEmail:  config.GetString(c, "RESEND_FROM_EMAIL", ""),
		Recipients: config.GetList(c, "ADMIN_NOTIFY_EMAIL"),
	}
	if email.Enabled() {
		notifiers = append(notifiers, services.NewEmailNotifier(email))
	}

	sms := services.SMSConfig{
		AccountSID: config.GetString(c, "TWILIO_ACCOUNT_SID", ""),
		AuthToken:  config.GetString(c, "TWILIO_AUTH_TOKEN", ""),
		FromNumber: config.GetString(c, "TWILIO_FROM_NUMBER", ""),
		ToNumber:   config.GetString(c, "ADMIN_NOTIFY_PHONE", ""),
	}
	if sms.Enabled() {
		notifiers = append(notifiers, services.NewSMSNotifier(sms))
	}

	multi := services.NewMultiNotifier(notifiers...)
	zlog.Info().Int("channels", multi.Len()).Msg("Booking notifications configured")
	return multi
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
