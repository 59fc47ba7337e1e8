package model

// User is the simulated session profile persisted under the "user"
// storage key; absent means logged out.
type User struct {
	ID      string `json:"id"`                // định danh người dùng
	Name    string `json:"name"`              // họ tên hiển thị
	Email   string `json:"email"`             // email đăng nhập
	Avatar  string `json:"avatar,omitempty"`  // ảnh đại diện
	Phone   string `json:"phone,omitempty"`   // số điện thoại
	Address string `json:"address,omitempty"` // địa chỉ giao hàng
}
