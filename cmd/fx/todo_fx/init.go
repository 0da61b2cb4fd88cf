package todo_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"placeholder/internal/repositories"
	"placeholder/internal/services"
)

var Module = fx.Provide(
	provideToDoRepo, provideToDoService)

func provideToDoRepo(db *gorm.DB) repositories.ToDoRepositoryInterface {
	return repositories.NewToDoRepository(db)
}

func provideToDoService(todoRepo repositories.ToDoRepositoryInterface, accountRepo repositories.AccountRepository) services.ToDoServiceInterface {
	return services.NewToDoService(todoRepo, accountRepo)
}
