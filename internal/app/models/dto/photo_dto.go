package dto

// AddPhotosRequest is the multipart form for uploading photos to an album.
// One or more "images" file parts accompany it; every uploaded photo shares
// the same caption, student association and featured flag.
type AddPhotosRequest struct {
	StudentID  *int64 `form:"studentId"`
	Caption    string `form:"caption"`
	IsFeatured bool   `form:"isFeatured"`
}

// AddPhotosResponse reports how many photos were stored
type AddPhotosResponse struct {
	Added int `json:"added"`
}
