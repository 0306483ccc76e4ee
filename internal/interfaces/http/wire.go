package http

import (
	"time"

	"gorm.io/gorm"

	authusecases "campushub/internal/application/auth/usecases"
	complaintusecases "campushub/internal/application/complaint/usecases"
	menuusecases "campushub/internal/application/menu/usecases"
	orderusecases "campushub/internal/application/order/usecases"
	infraauth "campushub/internal/infrastructure/auth"
	"campushub/internal/infrastructure/config"
	"campushub/internal/infrastructure/email"
	"campushub/internal/infrastructure/payment"
	"campushub/internal/infrastructure/repository"
	authhandlers "campushub/internal/interfaces/http/handlers/auth"
	complainthandlers "campushub/internal/interfaces/http/handlers/complaint"
	menuhandlers "campushub/internal/interfaces/http/handlers/menu"
	orderhandlers "campushub/internal/interfaces/http/handlers/order"
	"campushub/internal/interfaces/http/middleware"
	"campushub/internal/shared/db"
	"campushub/internal/shared/logger"
)

// BuildRouter wires repositories, use cases and handlers into a ready Router.
func BuildRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	complaintRepo := repository.NewComplaintRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	menuRepo := repository.NewMenuItemRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	rememberRepo := repository.NewRememberedLoginRepository(database)

	txManager := db.NewTransactionManager(database)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	upiService := payment.NewUPIService(&cfg.Payment)
	notifier := email.NewOrderNotifier(&cfg.Notifier, log)
	loginDelay := time.Duration(cfg.Auth.LoginDelayMS) * time.Millisecond

	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewLoginUseCase(cfg.Auth.Credentials, hasher, jwtService, rememberRepo, loginDelay, log),
		authusecases.NewGetRememberedLoginUseCase(rememberRepo, log),
	)

	complaintHandler := complainthandlers.NewComplaintHandler(
		complaintusecases.NewSubmitComplaintUseCase(complaintRepo, log),
		complaintusecases.NewUpdateStatusUseCase(complaintRepo, commentRepo, txManager, log),
		complaintusecases.NewAddCommentUseCase(complaintRepo, commentRepo, txManager, log),
		complaintusecases.NewGetComplaintUseCase(complaintRepo, log),
		complaintusecases.NewListComplaintsUseCase(complaintRepo, log),
		complaintusecases.NewListMyComplaintsUseCase(complaintRepo, log),
		complaintusecases.NewGetStatsUseCase(complaintRepo, log),
	)

	menuHandler := menuhandlers.NewMenuHandler(
		menuusecases.NewAddItemUseCase(menuRepo, log),
		menuusecases.NewDeleteItemUseCase(menuRepo, log),
		menuusecases.NewListMenuUseCase(menuRepo, log),
	)

	orderHandler := orderhandlers.NewOrderHandler(
		orderusecases.NewCheckoutUseCase(menuRepo, orderRepo, upiService, log),
		orderusecases.NewCompletePaymentUseCase(orderRepo, notifier, txManager, log),
		orderusecases.NewGetPendingOrderUseCase(orderRepo, upiService, log),
		orderusecases.NewListOrdersUseCase(orderRepo, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return NewRouter(authHandler, complaintHandler, menuHandler, orderHandler, authMiddleware, log)
}
