package util

const (
	SessionCookieName = "educonexa_session"
	DefaultEventPlace = "Online"
	CertificatePrefix = "CERT-"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeVideo = "video/"
	MimeImage = "image/"
	MimePDF   = "application/pdf"
)

var AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
