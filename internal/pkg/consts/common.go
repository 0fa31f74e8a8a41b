package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

// 内容集合名，与线上站点读取的 Firestore 迁移数据保持一致
const (
	CollectionNoticias = "noticias"
	CollectionProdutos = "produtos"
	CollectionGaleria  = "galeria"
	CollectionVideos   = "videos"
)

// 对象存储命名空间
const (
	NamespaceNoticias   = "noticias/"
	NamespaceProdutos   = "produtos/"
	NamespaceGaleria    = "galeria/"
	NamespaceVideos     = "videos/"
	NamespaceThumbnails = "thumbnails/"
)

const (
	VideoTypeLocal = "local"

	// ThumbnailMaxWidth 视频封面归一化的最大宽度
	ThumbnailMaxWidth = 1280
)

// 登录限流
const (
	LoginMaxAttempts = 5
)
