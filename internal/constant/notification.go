package constant

type NotificationType string

const (
	NotificationTypeReview  NotificationType = "review"
	NotificationTypeReply   NotificationType = "reply"
	NotificationTypeHelpful NotificationType = "helpful"
)

const REVIEW_MAX_CONTENT_LENGTH = 50
