package admin

// Admin là account quản trị do library backend quản lý.
// Gateway không lưu credentials, chỉ forward.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResult là token + identity backend trả về sau login.
type LoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}
