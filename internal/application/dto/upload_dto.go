package dto

// UploadResponse resultado de una ingesta exitosa.
type UploadResponse struct {
	Success       bool `json:"success"`
	ProductsCount int  `json:"products_count"`
}
