package constant

const (
	OAUTH_PROVIDER_GOOGLE = "google"
	OAUTH_PROVIDER_KAKAO  = "kakao"
	OAUTH_PROVIDER_NAVER  = "naver"
)

// OAuth sign-in failures are collapsed into a small set of categories for the
// error page, regardless of which provider or step produced them.
type OAuthErrorCategory string

const (
	OAuthErrorConfiguration OAuthErrorCategory = "configuration"
	OAuthErrorAccessDenied  OAuthErrorCategory = "access-denied"
	OAuthErrorVerification  OAuthErrorCategory = "verification"
	OAuthErrorCallback      OAuthErrorCategory = "callback"
)
