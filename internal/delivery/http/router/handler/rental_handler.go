package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"chatop/internal/delivery/http/middleware"
	"chatop/internal/delivery/http/response"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pictureField is the multipart form field carrying the rental image.
const pictureField = "picture"

// RentalHandler holds dependencies for rental-related handlers.
type RentalHandler struct {
	uc     usecase.RentalUsecase
	logger *slog.Logger
}

// NewRentalHandler is the constructor for RentalHandler, injected by Fx.
func NewRentalHandler(uc usecase.RentalUsecase, logger *slog.Logger) *RentalHandler {
	return &RentalHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the whole rental catalogue.
func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromRentals(rentals))
}

// Get returns the rental named by the path parameter.
func (h *RentalHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid rental id")
	}

	rental, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromRentalDetail(rental))
}

// Create handles the multipart rental creation request.
func (h *RentalHandler) Create(c echo.Context) error {
	user := middleware.AuthenticatedUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	name := c.FormValue("name")
	description := c.FormValue("description")
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	surface, err := strconv.ParseFloat(c.FormValue("surface"), 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid surface value")
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid price value")
	}

	image, err := readPicture(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.Create(c.Request().Context(), &usecase.CreateRentalInput{
		OwnerID:     user.ID,
		Name:        name,
		Surface:     surface,
		Price:       price,
		Description: description,
		Image:       image,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.MessageResponse{Message: "Rental created !"})
}

// Update handles the multipart rental update request. Absent form fields leave
// the stored values untouched.
func (h *RentalHandler) Update(c echo.Context) error {
	user := middleware.AuthenticatedUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid rental id")
	}

	input := &usecase.UpdateRentalInput{
		RentalID:    id,
		RequesterID: user.ID,
	}

	if name := c.FormValue("name"); name != "" {
		input.Name = &name
	}
	if description := c.FormValue("description"); description != "" {
		input.Description = &description
	}
	if raw := c.FormValue("surface"); raw != "" {
		surface, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid surface value")
		}
		input.Surface = &surface
	}
	if raw := c.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid price value")
		}
		input.Price = &price
	}

	image, err := readPicture(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.Image = image

	if _, err := h.uc.Update(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.MessageResponse{Message: "Rental updated !"})
}

// readPicture extracts the optional image payload from the multipart form.
// A missing file field is not an error.
func readPicture(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(pictureField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid picture upload")
	}

	return readFileHeader(fileHeader)
}

func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, domainerrors.ErrImageStorage.WrapMessage("failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domainerrors.ErrImageStorage.WrapMessage("failed to read uploaded file")
	}

	return data, nil
}
