package errors

// Error code constants, format CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to its own display strings; the
// message field is a ready-to-show Vietnamese fallback.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // chưa đăng nhập
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // sai email hoặc mật khẩu
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token hết hạn
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // token không hợp lệ
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // email đã đăng ký

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // dữ liệu đầu vào sai
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // id không hợp lệ
	ValidationTooShort     = "VALIDATION_TOO_SHORT"     // quá ngắn
	ValidationRequired     = "VALIDATION_REQUIRED"      // thiếu trường bắt buộc

	// ==================== Product (PRODUCT_) ====================
	ProductNotFound       = "PRODUCT_NOT_FOUND"        // không tìm thấy sản phẩm
	ProductCompareLimit   = "PRODUCT_COMPARE_LIMIT"    // vượt giới hạn so sánh
	ProductSearchTooShort = "PRODUCT_SEARCH_TOO_SHORT" // từ khóa tìm kiếm quá ngắn

	// ==================== Cart (CART_) ====================
	CartItemNotFound   = "CART_ITEM_NOT_FOUND"  // không có dòng hàng này
	CartInvalidVariant = "CART_INVALID_VARIANT" // màu hoặc size không tồn tại

	// ==================== Wishlist (WISHLIST_) ====================
	WishlistItemNotFound = "WISHLIST_ITEM_NOT_FOUND" // sản phẩm chưa được lưu

	// ==================== News (NEWS_) ====================
	NewsArticleNotFound = "NEWS_ARTICLE_NOT_FOUND" // không tìm thấy bài viết

	// ==================== Chat (CHAT_) ====================
	ChatEmptyMessage = "CHAT_EMPTY_MESSAGE" // tin nhắn rỗng

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR"  // lỗi máy chủ
	InternalStorageError = "INTERNAL_STORAGE_ERROR" // lỗi lưu trữ
	InternalConfigError  = "INTERNAL_CONFIG_ERROR"  // lỗi cấu hình
)
