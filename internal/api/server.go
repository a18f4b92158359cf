package api

import (
	"github.com/gin-gonic/gin"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/middleware"
	"github.com/oficinapro/workshop-api/internal/service"
	"github.com/oficinapro/workshop-api/internal/service/pubsub"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

type Server struct {
	auth         *AuthHandler
	tenant       *TenantHandler
	subscription *SubscriptionHandler
	plan         *PlanHandler
	user         *UserHandler
	client       *ClientHandler
	workOrder    *WorkOrderHandler
	portal       *PortalHandler
	websocket    *WebSocketHandler

	authMw     *middleware.AuthMiddleware
	tenantMw   *middleware.TenantMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	authService *service.AuthService,
	tenantService *service.TenantService,
	subscriptionService *service.SubscriptionService,
	planService *service.PlanService,
	userService *service.UserService,
	clientService *service.ClientService,
	workOrderService *service.WorkOrderService,
	authMw *middleware.AuthMiddleware,
	tenantMw *middleware.TenantMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		auth:         NewAuthHandler(authService),
		tenant:       NewTenantHandler(tenantService),
		subscription: NewSubscriptionHandler(subscriptionService, planService),
		plan:         NewPlanHandler(planService),
		user:         NewUserHandler(userService),
		client:       NewClientHandler(clientService),
		workOrder:    NewWorkOrderHandler(workOrderService),
		portal:       NewPortalHandler(workOrderService),
		websocket:    NewWebSocketHandler(logger, pubsub),
		authMw:       authMw,
		tenantMw:     tenantMw,
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))

	// Global rate limiting by IP covers the unauthenticated surface too
	api.Use(s.rateLimit.GlobalRateLimit(10000))

	// Public surface: login, registration and the client portal
	auth := api.Group("/auth")
	{
		auth.POST("/login", s.auth.Login)
		auth.POST("/registro", s.auth.Register)
	}

	portal := api.Group("/portal")
	{
		portal.GET("/:token", s.portal.GetOrder)
		portal.POST("/:token/aprovar", s.portal.ApproveOrder)
	}

	// Everything below runs behind the same chain: identity first, then
	// the tenant boundary, then per-tenant rate limiting.
	authed := api.Group("", s.authMw.JWTAuth(), s.tenantMw.ResolveTenant(), s.rateLimit.TenantRateLimit())
	{
		authed.GET("/auth/perfil", s.auth.Profile)

		oficina := authed.Group("/oficina")
		{
			oficina.GET("", s.tenant.GetWorkshop)
			oficina.PUT("", s.authMw.RequireRole(domain.RoleAdmin), s.tenant.UpdateWorkshop)
		}

		assinatura := authed.Group("/assinatura")
		{
			assinatura.GET("", s.subscription.GetCurrent)
			assinatura.GET("/planos", s.subscription.ListPlans)
			assinatura.POST("/trocar-plano", s.authMw.RequireRole(domain.RoleAdmin), s.subscription.Renew)
		}

		usuarios := authed.Group("/usuarios", s.authMw.RequireRole(domain.RoleAdmin))
		{
			usuarios.POST("", s.user.CreateUser)
			usuarios.GET("", s.user.ListUsers)
			usuarios.GET("/:id", s.user.GetUser)
			usuarios.PUT("/:id", s.user.UpdateUser)
			usuarios.DELETE("/:id", s.user.DeleteUser)
		}

		clientes := authed.Group("/clientes")
		{
			clientes.POST("", s.client.CreateClient)
			clientes.GET("", s.client.ListClients)
			clientes.GET("/:id", s.client.GetClient)
			clientes.POST("/:id/veiculos", s.client.AddVehicle)
		}
		authed.GET("/veiculos/:id", s.client.GetVehicle)

		ordens := authed.Group("/ordens")
		{
			ordens.POST("", s.workOrder.CreateOrder)
			ordens.GET("", s.workOrder.ListOrders)
			ordens.GET("/stream", s.websocket.HandleWebSocket)
			ordens.GET("/:id", s.workOrder.GetOrder)
			ordens.PATCH("/:id/status", s.workOrder.UpdateOrderStatus)
			ordens.GET("/:id/historico", s.workOrder.GetOrderHistory)
			ordens.POST("/:id/fotos", s.workOrder.AddOrderPhoto)
			ordens.DELETE("/:id/fotos/:photoId", s.workOrder.RemoveOrderPhoto)
		}

		// Platform administration, SUPERADMIN only
		admin := authed.Group("/admin", s.authMw.RequireSuperAdmin())
		{
			admin.GET("/dashboard", s.tenant.GetDashboard)

			empresas := admin.Group("/empresas")
			{
				empresas.POST("", s.tenant.CreateTenant)
				empresas.GET("", s.tenant.ListTenants)
				empresas.GET("/:id", s.tenant.GetTenant)
				empresas.PUT("/:id", s.tenant.UpdateTenant)
				empresas.PATCH("/:id/status", s.tenant.UpdateTenantStatus)
				empresas.DELETE("/:id", s.tenant.DeleteTenant)
				empresas.GET("/:id/stats", s.tenant.GetTenantStats)
			}

			planos := admin.Group("/planos")
			{
				planos.POST("", s.plan.CreatePlan)
				planos.GET("", s.plan.ListPlans)
				planos.GET("/:id", s.plan.GetPlan)
				planos.PUT("/:id", s.plan.UpdatePlan)
			}

			admin.DELETE("/assinaturas/:id", s.subscription.CancelSubscription)
		}
	}
}

// StartWebSocketHub starts the hub that fans order events out to connected
// dashboards.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
