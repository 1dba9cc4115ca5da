// seed_user cria um funcionário direto no banco. A API não tem cadastro de
// usuários: admin, caixa e garçom entram por aqui.
//
// Uso: go run ./cmd/seed_user -email admin@restaurante.com -senha segredo -nome "Admin" -papel admin
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/infrastructure/postgres"
	"github.com/comandaki/comanda-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email do funcionário")
	senha := flag.String("senha", "", "senha em texto claro (será hasheada)")
	nome := flag.String("nome", "", "nome do funcionário")
	papel := flag.String("papel", entity.RoleGarcom, "papel: admin | caixa | garcom")
	flag.Parse()

	if *email == "" || *senha == "" || *nome == "" {
		fmt.Fprintln(os.Stderr, "email, senha e nome são obrigatórios")
		flag.Usage()
		os.Exit(1)
	}
	switch *papel {
	case entity.RoleAdmin, entity.RoleCaixa, entity.RoleGarcom:
	default:
		fmt.Fprintf(os.Stderr, "papel inválido: %s\n", *papel)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash da senha: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão com PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *nome,
		Role:         *papel,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := postgres.NewUserRepository(pool).Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "criar usuário: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuário %s (%s) criado: %s\n", user.Name, user.Role, user.ID)
}
