package notify

import (
	"fmt"
	"html"
	"time"
)

func RedemptionReceipt(name, email, voucherTitle string, pointsUsed int, redeemedAt time.Time) Message {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 30px;">
			<h2>Voucher Redemption Confirmation</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Voucher:</strong> %s</p>
			<p><strong>Points Used:</strong> %d</p>
			<p><strong>Redemption Time:</strong> %s</p>
			<p>Thank you for taking action with <strong>EcoTrack</strong>. Your eco-points just made a difference!</p>
		</div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(voucherTitle),
		pointsUsed, redeemedAt.Format(time.RFC1123),
	)

	return Message{
		To:       email,
		Subject:  "Voucher Redeemed: " + voucherTitle,
		HTMLBody: body,
	}
}

func PasswordReset(email, resetURL string) Message {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 30px;">
			<h2>Reset your EcoTrack password</h2>
			<p>Follow the link below to choose a new password. The link expires in one hour.</p>
			<p><a href="%s">%s</a></p>
			<p>If you did not request this, you can ignore this message.</p>
		</div>`,
		resetURL, html.EscapeString(resetURL),
	)

	return Message{
		To:       email,
		Subject:  "EcoTrack Password Reset",
		HTMLBody: body,
	}
}

func EcoTip(name, email, tipTitle, tipContent string) Message {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 30px;">
			<p>Hi %s,</p>
			<h2>%s</h2>
			<p>%s</p>
			<p>Keep up the good work &mdash; the <strong>EcoTrack</strong> team</p>
		</div>`,
		html.EscapeString(name), html.EscapeString(tipTitle), html.EscapeString(tipContent),
	)

	return Message{
		To:       email,
		Subject:  "EcoTrack Tip: " + tipTitle,
		HTMLBody: body,
	}
}

func FeedbackAlert(adminInbox, name, email, message string) Message {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 30px;">
			<h2>New feedback received</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p>%s</p>
		</div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message),
	)

	return Message{
		To:       adminInbox,
		Subject:  "EcoTrack Feedback from " + name,
		HTMLBody: body,
	}
}
