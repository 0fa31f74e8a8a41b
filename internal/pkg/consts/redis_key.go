package consts

const (
	LoginAttemptsKey  = "login:attempts:"
	PasswordResetKey  = "password:reset:"
	UploadProgressKey = "upload:progress:"
)

// ContentChannelPrefix 内容变更事件的 Pub/Sub 频道前缀，按集合区分
const ContentChannelPrefix = "content:"
