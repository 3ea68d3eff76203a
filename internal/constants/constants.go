package constants

const (
	//分頁
	DefaultPagingSize int = 5
	DefaultPaging     int = 1
)

type SortOrderEnum string

const (
	DefaultSortOrder SortOrderEnum = "asc"
	SortOrderAsc     SortOrderEnum = "asc"
	SortOrderDesc    SortOrderEnum = "desc"
)

func IsValidSortOrderEnum(order string) bool {
	switch SortOrderEnum(order) {
	case SortOrderAsc, SortOrderDesc:
		return true
	default:
		return false
	}
}

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type TokenDurationHour int

const (
	AccessTokenDuration TokenDurationHour = 24
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// 主題設定
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// 預設管理者帳號，load credentials時會合併進清單
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// super admin row不可刪除
const ProtectedAdminUserID = 1
