package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const maxRoomImages = 5

type CreateRoomRequest struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Amenities   []string        `json:"amenities"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DeleteRoomImagesRequest struct {
	PublicIDs []string `json:"public_ids" binding:"required"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /rooms.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/:id.
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom handles POST /rooms.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload CreateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Create(services.CreateRoomInput{
		RoomNumber:  payload.RoomNumber,
		Type:        payload.Type,
		Price:       payload.Price,
		Status:      payload.Status,
		Description: payload.Description,
		Amenities:   payload.Amenities,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PUT/PATCH /rooms/:id with a partial payload.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /rooms/:id.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}

// UpdateRoomStatus handles PATCH /rooms/:id/status.
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
		return
	}

	room, err := ctrl.RoomSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// UploadRoomImages handles POST /rooms/:id/images (multipart field "images").
func (ctrl *RoomController) UploadRoomImages(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "multipart form required", err.Error())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "no image files provided")
		return
	}
	if len(files) > maxRoomImages {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "too many image files")
		return
	}

	uploads := make([]services.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "error.validation", "failed to read uploaded file")
			return
		}
		defer f.Close()
		uploads = append(uploads, services.Upload{Filename: fh.Filename, Content: f})
	}

	room, err := ctrl.RoomSvc.AttachImages(id, uploads)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoomImages handles DELETE /rooms/:id/images.
func (ctrl *RoomController) DeleteRoomImages(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload DeleteRoomImagesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
		return
	}

	room, err := ctrl.RoomSvc.DetachImages(id, payload.PublicIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
