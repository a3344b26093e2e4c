package mail

import (
	"fmt"
	"html"
	"strings"
)

const (
	WelcomeSubject       = "Welcome to Our App!"
	ResetPasswordSubject = "Reset Password"

	logoImg = `<a href="#"><img src="https://res.cloudinary.com/dyvut6idr/image/upload/v1725640842/Logo_PetStar-removebg-preview_oo91wx.png" alt="PetStar Logo" height="60"></a>`
)

// WelcomeBody renders the HTML body of the registration welcome mail.
func WelcomeBody(petStar string) string {
	return fmt.Sprintf(`<html>
  <head>
    <title>Welcome to PetStar!</title>
  </head>
  <body>
    <h1>Welcome to PetStar!</h1>
    <p>Dear <strong>%s</strong>,</p>
    <h2>Congratulations on joining PetStar!</h2>
    <p>We are thrilled to have you on board! As a member of our community, you'll be able to connect with fellow pet lovers, share your pet's adventures, and discover new friends.</p>
    <p><strong>About PetStar</strong></p>
    <p>PetStar is a social network dedicated to pet owners and enthusiasts. Our mission is to provide a fun and engaging platform for you to share your pet's stories, photos, and videos.</p>
    %s
    <p>Best regards,</p>
    <p>The PetStar Team</p>
  </body>
</html>`, html.EscapeString(petStar), logoImg)
}

// ResetPasswordBody renders the HTML body of the password-reset mail.
// baseURL is the externally reachable site root the reset link hangs off.
func ResetPasswordBody(baseURL, recipient, token string) string {
	link := fmt.Sprintf("%s/restorePassword/%s", strings.TrimRight(baseURL, "/"), token)

	return fmt.Sprintf(`<html>
  <head>
    <title>Reset Password</title>
  </head>
  <body>
    <h1>Dear <strong>%s</strong>,</h1>
    <p>Please click on the following link to reset your password:</p>
    <p>
    <a href="%s">Reset Password</a>
    </p>
    %s
    <p>Best regards,</p>
    <p>The PetStar Team</p>
  </body>
</html>`, html.EscapeString(recipient), link, logoImg)
}
