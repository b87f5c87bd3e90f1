package handler

import (
	"crypto/rand"
	"encoding/hex"
	"time"
	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/logger"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func LoginPage(c *fiber.Ctx) error {
	if c.Cookies("access_token") != "" {
		if token, err := helper.ParseToken(c.Cookies("access_token")); err == nil && token.Valid {
			return c.Redirect("/dashboard/", fiber.StatusFound)
		}
	}
	return c.Render("login", fiber.Map{})
}

func Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": constants.MISSING_LOGIN_INPUT,
		})
	}

	account, err := helper.GetAccountByUsername(username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil || !helper.CheckPasswordHash(password, account.Password) {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Error": "Wrong username or password.",
		})
	}
	if !account.Active {
		return c.Status(fiber.StatusForbidden).Render("login", fiber.Map{
			"Error": constants.ACCOUNT_NOT_ACTIVE,
		})
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		OperatorId: account.ID,
		Username:   account.Username,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.Redirect("/dashboard/", fiber.StatusFound)
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
	})
	return c.Redirect("/login", fiber.StatusFound)
}

func ForgotPasswordPage(c *fiber.Ctx) error {
	return c.Render("forgot_password", fiber.Map{})
}

// ForgotPassword issues a one-time reset token and mails it. The
// response never reveals whether the address exists.
func ForgotPassword(c *fiber.Ctx) error {
	address := c.FormValue("email")
	notice := fiber.Map{"Notice": "If that address is registered, a reset link is on its way."}

	account, err := helper.GetAccountByEmail(address)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return c.Render("forgot_password", notice)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	token := hex.EncodeToString(raw)

	resetToken := model.PasswordResetToken{
		AccountId: account.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := utils.SendPasswordResetEmail(account.Email, token); err != nil {
		logger.Error("reset mail failed for "+account.Username, err)
	}
	return c.Render("forgot_password", notice)
}

func ResetPasswordPage(c *fiber.Ctx) error {
	return c.Render("reset_password", fiber.Map{"Token": c.Query("token")})
}

func ResetPassword(c *fiber.Ctx) error {
	token := c.FormValue("token")
	newPassword := c.FormValue("new_password")
	if token == "" || len(newPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).Render("reset_password", fiber.Map{
			"Token": token,
			"Error": "Password must be at least 6 characters.",
		})
	}

	db := database.DB
	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).Render("reset_password", fiber.Map{
			"Token": "",
			"Error": "This reset link is invalid or has expired.",
		})
	}

	hash, err := helper.HashPassword(newPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH, err)
	}

	var account model.Account
	if err := db.First(&account, resetToken.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	account.Password = hash
	if err := db.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	db.Delete(&resetToken)

	return c.Render("login", fiber.Map{"Notice": "Password updated, sign in again."})
}
