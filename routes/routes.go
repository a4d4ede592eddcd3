package routes

import (
	"github.com/Antdol/LittleLemonAPI/configs"
	"github.com/Antdol/LittleLemonAPI/controllers"
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/middlewares"
	"github.com/Antdol/LittleLemonAPI/pkg/logger"
	"github.com/Antdol/LittleLemonAPI/repository"
	"github.com/Antdol/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and controllers onto a gin engine.
func NewRouter(db *gorm.DB, cfg *configs.Config, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), log.WithComponent("http").Middleware(), middlewares.CORSMiddleware(cfg.CORSOrigins))
	RegisterRoutes(r, db, cfg)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, groupRepo, cfg.JWTSecret, cfg.JWTTTL)
	groupSvc := services.NewGroupService(userRepo, groupRepo)
	catSvc := services.NewCategoryService(catRepo)
	menuSvc := services.NewMenuService(menuRepo, catRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, groupRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewGroupController(groupSvc, entity.GroupManager, "manager group")
	crewCtrl := controllers.NewGroupController(groupSvc, entity.GroupDeliveryCrew, "delivery crew")

	policy := Policy()
	throttle := middlewares.NewThrottle(cfg.ThrottleUserPerMin, cfg.ThrottleAnonPerMin)
	r.Use(
		middlewares.Authenticate(policy, cfg.JWTSecret),
		throttle.Middleware(),
		middlewares.Gate(policy, groupSvc.LoadPrincipal),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authCtrl.Me)
	}

	r.GET("/categories", catCtrl.List)
	r.POST("/categories", catCtrl.Create)

	r.GET("/menu-items", menuCtrl.List)
	r.POST("/menu-items", menuCtrl.Create)
	r.GET("/menu-items/:id", menuCtrl.Get)
	r.PUT("/menu-items/:id", menuCtrl.Replace)
	r.PATCH("/menu-items/:id", menuCtrl.Patch)
	r.DELETE("/menu-items/:id", menuCtrl.Delete)

	r.GET("/cart", cartCtrl.Get)
	r.POST("/cart", cartCtrl.Add)
	r.DELETE("/cart", cartCtrl.Clear)

	r.GET("/orders", orderCtrl.List)
	r.POST("/orders", orderCtrl.Checkout)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PUT("/orders/:id", orderCtrl.Replace)
	r.PATCH("/orders/:id", orderCtrl.Patch)
	r.DELETE("/orders/:id", orderCtrl.Delete)

	g := r.Group("/groups")
	{
		g.GET("/manager/users", managerCtrl.List)
		g.POST("/manager/users", managerCtrl.Add)
		g.DELETE("/manager/users/:id", managerCtrl.Remove)

		g.GET("/delivery-crew/users", crewCtrl.List)
		g.POST("/delivery-crew/users", crewCtrl.Add)
		g.DELETE("/delivery-crew/users/:id", crewCtrl.Remove)
	}
}
