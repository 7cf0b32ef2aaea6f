// Crea el usuario administrador inicial. Uso:
//
//	SEED_ADMIN_EMAIL=admin@evento.com SEED_ADMIN_PASSWORD=... go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/invitados-api/internal/domain"
	"github.com/jhoicas/invitados-api/internal/domain/entity"
	"github.com/jhoicas/invitados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/invitados-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" || len(password) < 8 {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD (mínimo 8 caracteres) son requeridos")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashear password:", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := postgres.NewUserRepository(pool)
	if err := repo.Create(ctx, admin); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			fmt.Println("el administrador ya existe:", email)
			return
		}
		fmt.Fprintln(os.Stderr, "crear administrador:", err)
		os.Exit(1)
	}
	fmt.Println("administrador creado:", email)
}
