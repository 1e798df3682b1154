package container

import (
	app "tile-analyzer/internal/application"
	"tile-analyzer/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	InspectionService *app.InspectionService
}

func New(userRepo port.UserRepository, binarizer port.Binarizer, annotator port.Annotator) *Container {
	userService := app.NewUserService(userRepo)
	inspectionService := app.NewInspectionService(binarizer, annotator)

	return &Container{
		UserService:       userService,
		InspectionService: inspectionService,
	}
}
