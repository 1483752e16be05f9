package helpers

import (
	"fmt"
	"html"
)

// Страницы собираются строками, как и письма: шаблонизатор на пять форм
// был бы лишним. Всё, что пришло от пользователя, прогоняется через
// html.EscapeString.

func pageShell(title, inner string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>%s - Self Rental Cars</title>
  </head>
  <body style="font-family:Arial,sans-serif;background:#f7f7f7;padding:0;margin:0;">
    <table width="100%%" bgcolor="#f7f7f7" cellpadding="0" cellspacing="0" style="padding:40px 0;">
      <tr>
        <td align="center">
          <table width="420" bgcolor="#fff" cellpadding="28" cellspacing="0" style="border-radius:10px;box-shadow:0 2px 8px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da;margin-top:0;">%s</h2>
                %s
                <hr style="border:none;border-top:1px solid #eee;margin:28px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  <a href="/home" style="color:#999;">Home</a> &middot;
                  <a href="/about" style="color:#999;">About</a> &middot;
                  <a href="/contact" style="color:#999;">Contact</a>
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, title, title, inner)
}

func errorBox(errMsg string) string {
	if errMsg == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="color:#ee4444;font-size:14px;margin:0 0 16px 0;">%s</p>`, html.EscapeString(errMsg))
}

func messageBox(msg string) string {
	if msg == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="color:#2d9a4b;font-size:14px;margin:0 0 16px 0;">%s</p>`, html.EscapeString(msg))
}

const inputStyle = `width:100%;padding:10px;margin:0 0 14px 0;border:1px solid #ddd;border-radius:5px;box-sizing:border-box;`
const buttonStyle = `width:100%;padding:12px;background:#2d74da;color:#fff;border:none;border-radius:5px;font-weight:bold;cursor:pointer;`

func BuildLoginHTML(errMsg string) string {
	return pageShell("Login", errorBox(errMsg)+fmt.Sprintf(`
<form method="POST" action="/login">
  <input type="text" name="username" placeholder="Username" required style="%s">
  <input type="password" name="password" placeholder="Password" required style="%s">
  <button type="submit" style="%s">Login</button>
</form>
<p style="font-size:14px;">
  <a href="/register" style="color:#2d74da;">Create an account</a> &middot;
  <a href="/forgot-password" style="color:#2d74da;">Forgot password?</a>
</p>`, inputStyle, inputStyle, buttonStyle))
}

func BuildRegisterHTML(errMsg string) string {
	return pageShell("Register", errorBox(errMsg)+fmt.Sprintf(`
<form method="POST" action="/register">
  <input type="text" name="username" placeholder="Username" required style="%s">
  <input type="email" name="email" placeholder="Email" required style="%s">
  <input type="password" name="password" placeholder="Password" required style="%s">
  <button type="submit" style="%s">Register</button>
</form>
<p style="font-size:14px;"><a href="/login" style="color:#2d74da;">Already have an account? Login</a></p>`,
		inputStyle, inputStyle, inputStyle, buttonStyle))
}

func BuildHomeHTML(username string) string {
	return pageShell("Home", fmt.Sprintf(`
<p style="font-size:16px;color:#333;">Welcome back, <b>%s</b>!</p>
<p style="font-size:14px;color:#666;">You are signed in to Self Rental Cars.</p>
<p><a href="/logout" style="color:#2d74da;">Logout</a></p>`, html.EscapeString(username)))
}

func BuildAboutHTML() string {
	return pageShell("About Us", `
<p style="font-size:15px;color:#333;">Self Rental Cars lets you pick up a car and go — no counter, no queue.</p>
<p style="font-size:15px;color:#333;">Sign in to manage your bookings.</p>`)
}

func BuildContactHTML() string {
	return pageShell("Contact", `
<p style="font-size:15px;color:#333;">Questions? Write to <a href="mailto:support@selfrentalcars.example" style="color:#2d74da;">support@selfrentalcars.example</a>.</p>`)
}

func BuildForgotPasswordHTML(message, errMsg string) string {
	return pageShell("Forgot Password", messageBox(message)+errorBox(errMsg)+fmt.Sprintf(`
<p style="font-size:14px;color:#666;">Enter your email and we will send you a reset link.</p>
<form method="POST" action="/forgot-password">
  <input type="email" name="email" placeholder="Email" required style="%s">
  <button type="submit" style="%s">Send reset link</button>
</form>
<p style="font-size:14px;"><a href="/login" style="color:#2d74da;">Back to login</a></p>`, inputStyle, buttonStyle))
}

func BuildResetPasswordHTML(email, token string) string {
	return pageShell("Reset Password", fmt.Sprintf(`
<p style="font-size:14px;color:#666;">Set a new password for <b>%s</b>.</p>
<form method="POST" action="/reset-password">
  <input type="hidden" name="token" value="%s">
  <input type="password" name="password" placeholder="New password" required style="%s">
  <button type="submit" style="%s">Reset password</button>
</form>`, html.EscapeString(email), html.EscapeString(token), inputStyle, buttonStyle))
}
