package core

import "fmt"

// Transactional mail content. Kept deliberately small: the embedding
// application owns real branding; these bodies carry the facts a user needs.

func resetMailSubject(appName string) string {
	return "Reset Your Password - " + appName
}

func resetMailBody(appName, email, resetURL string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Reset Your Password</h2>
  <p>We received a request to reset the password for the %s account associated with <strong>%s</strong>.</p>
  <p><a href="%s">Reset My Password</a></p>
  <p>Or copy and paste this link into your browser:</p>
  <p>%s</p>
  <ul>
    <li>This link will expire in <strong>1 hour</strong></li>
    <li>If you didn't request this, please ignore this email</li>
    <li>Your password will remain unchanged until you create a new one</li>
  </ul>
  <p style="color: #999; font-size: 12px;">This is an automated email from %s. Please do not reply.</p>
</div>`, appName, email, resetURL, resetURL, appName)
}

func confirmMailSubject(appName string) string {
	return "Password Successfully Changed - " + appName
}

func confirmMailBody(appName, username, email string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Password Changed Successfully</h2>
  <p>Hello <strong>%s</strong>,</p>
  <p>This is a confirmation that the password for your %s account <strong>%s</strong> has been changed.</p>
  <p><strong>Security Note:</strong> If you did not make this change, please contact support immediately to secure your account.</p>
  <p style="color: #999; font-size: 12px;">This is an automated email from %s. Please do not reply.</p>
</div>`, username, appName, email, appName)
}
