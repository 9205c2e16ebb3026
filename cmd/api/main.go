package main

import (
	"context"
	"os"
	"strconv"

	"notedeck/internal/domain/sqlite"
	"notedeck/internal/domain/sqlite/repository"
	handler2 "notedeck/internal/http/handler"
	identitymw "notedeck/internal/http/middleware"
	"notedeck/internal/service"
	"notedeck/internal/utils/uid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/notedeck/prod/"

func main() {
	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	validate := validator.New()
	uid.Init(envInt64("NODE_ID", 1))

	// Init SQLite
	db, err := sqlite.Init(envOr("DB_PATH", "database.db"))
	if err != nil {
		panic(err)
	}

	// Getting repos
	noteRepo := repository.NewNoteRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate)
	noteService := service.NewNoteService(noteRepo, validate)

	// Getting handlers
	noteRoutes := handler2.NewNoteDefault(noteService)
	userRoutes := handler2.NewUserDefault(userService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	// Users
	e.POST("/api/users", userRoutes.RegisterUser)
	e.GET("/api/users/:id", userRoutes.GetUser)

	// Notes: every route resolves the acting user first
	identity := identitymw.NewIdentityMiddleware(&identitymw.IdentityMiddlewareConfig{
		UserRepo: userRepo,
	})
	notes := e.Group("/api/notes", identity)
	notes.GET("", noteRoutes.GetNotes)
	notes.POST("", noteRoutes.CreateNote)
	notes.GET("/:id", noteRoutes.GetNote)
	notes.PATCH("/:id", noteRoutes.UpdateNote)
	notes.DELETE("/:id", noteRoutes.DeleteNote)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + envOr("PORT", "7070")); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("invalid %s value %q: %v", key, v, err)
	}
	return parsed
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
