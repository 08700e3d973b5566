package email

// Config holds email delivery configuration.
// The Postmark tokens are optional so development setups can run on the
// console sender; SenderEmail is required as it establishes the From
// identity for all outbound mail. SupportEmail, when set, becomes the
// reply-to address.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
}
