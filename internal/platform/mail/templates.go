package mail

// Minimal HTML bodies for the transactional emails. Placeholders are
// substituted with strings.ReplaceAll before sending.

const verificationEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Verify your email</h2>
  <p>Thanks for signing up! Enter the code below to verify your email address:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 6px;">{verificationCode}</p>
  <p>This code expires in 24 hours.</p>
  <p>If you didn't create an account, you can safely ignore this email.</p>
</body>
</html>`

const welcomeEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, {name}!</h2>
  <p>Your email address has been verified and your account is ready to use.</p>
</body>
</html>`

const passwordResetRequestTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Reset your password</h2>
  <p>We received a request to reset your password. Click the link below to choose a new one:</p>
  <p><a href="{resetURL}">{resetURL}</a></p>
  <p>This link expires in 1 hour. If you didn't request a reset, you can safely ignore this email.</p>
</body>
</html>`

const passwordResetSuccessTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password changed</h2>
  <p>Your password has been reset successfully.</p>
  <p>If you didn't do this, contact support immediately.</p>
</body>
</html>`
