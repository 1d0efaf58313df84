package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware authenticates requests and stashes the account identity in
// locals. account_type is "company" for recruiters and "user" for applicants.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("account_id", claims["account_id"])
	ctx.Locals("account_type", claims["account_type"])
	return ctx.Next()
}

// CompanyOnlyMiddleware rejects tokens that do not belong to a company
// account. Must run after JwtMiddleware.
func CompanyOnlyMiddleware(ctx *fiber.Ctx) error {
	if accountType, _ := ctx.Locals("account_type").(string); accountType != "company" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Company account required"})
	}
	return ctx.Next()
}
