// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petwelfare/config"
	"petwelfare/internal/delivery/api/middleware"
	"petwelfare/internal/delivery/api/router/handler"
	"petwelfare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	RBACHandler       *handler.RBACHandler
	DeviceHandler     *handler.DeviceHandler
	SystemHandler     *handler.SystemHandler
	UploadHandler     *handler.UploadHandler
	PetHandler        *handler.PetHandler
	AdoptionHandler   *handler.AdoptionHandler
	PetShopHandler    *handler.PetShopHandler
	VeterinaryHandler *handler.VeterinaryHandler
	PharmacyHandler   *handler.PharmacyHandler
	RescueHandler     *handler.RescueHandler
	ShelterHandler    *handler.ShelterHandler
	CareHandler       *handler.CareHandler
	EcommerceHandler  *handler.EcommerceHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	auth       *handler.AuthHandler
	profile    *handler.ProfileHandler
	rbac       *handler.RBACHandler
	device     *handler.DeviceHandler
	system     *handler.SystemHandler
	upload     *handler.UploadHandler
	pet        *handler.PetHandler
	adoption   *handler.AdoptionHandler
	petShop    *handler.PetShopHandler
	veterinary *handler.VeterinaryHandler
	pharmacy   *handler.PharmacyHandler
	rescue     *handler.RescueHandler
	shelter    *handler.ShelterHandler
	care       *handler.CareHandler
	ecommerce  *handler.EcommerceHandler
	test       *handler.TestHandler
	mw         *middleware.AuthMiddleware
	config     *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:       params.AuthHandler,
		profile:    params.ProfileHandler,
		rbac:       params.RBACHandler,
		device:     params.DeviceHandler,
		system:     params.SystemHandler,
		upload:     params.UploadHandler,
		pet:        params.PetHandler,
		adoption:   params.AdoptionHandler,
		petShop:    params.PetShopHandler,
		veterinary: params.VeterinaryHandler,
		pharmacy:   params.PharmacyHandler,
		rescue:     params.RescueHandler,
		shelter:    params.ShelterHandler,
		care:       params.CareHandler,
		ecommerce:  params.EcommerceHandler,
		test:       params.TestHandler,
		mw:         params.AuthMiddleware,
		config:     params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Uploaded files
	if r.config.Storage != nil {
		e.Static(r.config.Storage.PublicPrefix, r.config.Storage.Root)
	}

	api := e.Group("/api")
	api.GET("/modules", r.system.ListModules)

	r.registerAuth(api)
	r.registerCore(api)
	r.registerRBAC(api)
	r.registerAdoption(api)
	r.registerPetShop(api)
	r.registerVeterinary(api)
	r.registerPharmacy(api)
	r.registerRescue(api)
	r.registerShelter(api)
	r.registerCare(api)
	r.registerEcommerce(api)
}

func (r *router) registerAuth(api *echo.Group) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/google", r.auth.GoogleLogin)
		authGroup.POST("/forgot-password", r.auth.ForgotPassword)
		authGroup.POST("/reset-password", r.auth.ResetPassword)
		authGroup.POST("/force-password", r.auth.ForcePassword, r.mw.Authenticate)
		authGroup.GET("/me", r.auth.Me, r.mw.Authenticate)
		authGroup.POST("/logout", r.auth.Logout, r.mw.Authenticate)
	}
}

func (r *router) registerCore(api *echo.Group) {
	users := api.Group("/users", r.mw.Authenticate)
	{
		users.GET("/me", r.profile.GetProfile)
		users.PUT("/me", r.profile.UpdateProfile)
	}

	pets := api.Group("/users/me/pets", r.mw.Authenticate)
	{
		pets.GET("", r.pet.ListMyPets)
		pets.POST("", r.pet.CreatePet)
		pets.GET("/:id", r.pet.GetMyPet)
		pets.PUT("/:id", r.pet.UpdatePet)
		pets.DELETE("/:id", r.pet.DeletePet)
		pets.POST("/:id/medical-history", r.pet.AddMedicalRecord)
		pets.POST("/:id/vaccinations", r.pet.AddVaccination)
		pets.GET("/:id/ownership-history", r.pet.OwnershipHistory)
	}
	api.GET("/pets/species", r.pet.ListSpecies)
	api.GET("/pets/species/:species/breeds", r.pet.ListBreeds)

	devices := api.Group("/devices", r.mw.Authenticate)
	{
		devices.POST("", r.device.RegisterDevice)
		devices.GET("", r.device.GetUserDevices)
		devices.PUT("/:id/token", r.device.UpdateFCMToken)
		devices.DELETE("/:id", r.device.DeactivateDevice)
	}

	api.POST("/uploads/:module", r.upload.Upload, r.mw.Authenticate)

	admin := api.Group("/admin", r.mw.Authenticate, r.mw.RequireRole(entity.RoleSuperAdmin))
	{
		admin.GET("/dashboard", r.system.Dashboard)
		admin.POST("/module-admins", r.rbac.CreateModuleAdmin)
	}
}

func (r *router) registerRBAC(api *echo.Group) {
	rbac := api.Group("/rbac", r.mw.Authenticate)
	rbac.GET("/check-permission", r.rbac.CheckPermission)
	rbac.POST("/check-permission", r.rbac.CheckPermission)

	perms := rbac.Group("/permissions", r.mw.RequirePermission(entity.ModuleRBAC, entity.ActionRead))
	{
		perms.GET("", r.rbac.ListPermissions)
		perms.GET("/modules", r.rbac.ListModules)
		perms.GET("/actions", r.rbac.ListActions)
		perms.GET("/:id", r.rbac.GetPermission)
	}
	permsAdmin := rbac.Group("/permissions", r.mw.RequireRole(entity.RoleSuperAdmin))
	{
		permsAdmin.POST("", r.rbac.CreatePermission)
		permsAdmin.PUT("/:id", r.rbac.UpdatePermission)
		permsAdmin.DELETE("/:id", r.rbac.DeletePermission)
	}

	roles := rbac.Group("/roles", r.mw.RequirePermission(entity.ModuleRBAC, entity.ActionRead))
	{
		roles.GET("", r.rbac.ListRoles)
		roles.GET("/:id", r.rbac.GetRole)
	}
	rolesAdmin := rbac.Group("/roles", r.mw.RequireRole(entity.RoleSuperAdmin))
	{
		rolesAdmin.POST("", r.rbac.CreateRole)
		rolesAdmin.POST("/initialize", r.rbac.InitializeRoles)
		rolesAdmin.PUT("/:id", r.rbac.UpdateRole)
		rolesAdmin.DELETE("/:id", r.rbac.DeactivateRole)
		rolesAdmin.POST("/:id/modules", r.rbac.AddModuleActions)
		rolesAdmin.DELETE("/:id/modules/:module", r.rbac.RemoveModule)
	}

	users := rbac.Group("/users", r.mw.RequirePermission(entity.ModuleRBAC, entity.ActionManage))
	{
		users.GET("", r.rbac.ListUsers)
		users.GET("/:id", r.rbac.GetUser)
		users.PUT("/:id/role", r.rbac.AssignRole)
		users.PUT("/:id/status", r.rbac.SetUserStatus)
	}

	// Module admins add their own staff; the use case checks the module.
	rbac.POST("/staff", r.rbac.CreateModuleStaff)
}

func (r *router) registerAdoption(api *echo.Group) {
	g := api.Group("/adoption")
	g.GET("/pets", r.adoption.ListAvailablePets)
	g.GET("/pets/:id", r.adoption.GetAvailablePet)
	g.GET("/certificates/:number/verify", r.adoption.VerifyCertificate)

	user := g.Group("/applications", r.mw.Authenticate)
	{
		user.POST("", r.adoption.SubmitApplication)
		user.GET("", r.adoption.ListMyApplications)
		user.GET("/:id", r.adoption.GetMyApplication)
		user.PUT("/:id/cancel", r.adoption.CancelApplication)
	}

	mgr := g.Group("/manager", r.mw.Authenticate, r.mw.RequireModule(entity.ModuleAdoption))
	{
		mgr.GET("/pets", r.adoption.ListPets)
		mgr.POST("/pets", r.adoption.CreatePet)
		mgr.GET("/pets/:id", r.adoption.GetPet)
		mgr.PUT("/pets/:id", r.adoption.UpdatePet)
		mgr.PUT("/pets/:id/status", r.adoption.SetPetStatus)
		mgr.DELETE("/pets/:id", r.adoption.DeletePet)
		mgr.GET("/applications", r.adoption.ListApplications)
		mgr.GET("/applications/:id", r.adoption.GetApplication)
		mgr.GET("/certificates", r.adoption.ListCertificates)
	}

	approve := g.Group("/manager/applications", r.mw.Authenticate,
		r.mw.RequireModule(entity.ModuleAdoption, entity.StaffAdmin, entity.StaffManager))
	{
		approve.PUT("/:id/approve", r.adoption.ApproveApplication)
		approve.PUT("/:id/reject", r.adoption.RejectApplication)
		approve.PUT("/:id/payment", r.adoption.MarkPaymentReceived)
		approve.POST("/:id/handover/schedule", r.adoption.ScheduleHandover)
		approve.POST("/:id/handover/otp", r.adoption.RegenerateHandoverOTP)
		approve.PUT("/:id/handover", r.adoption.CompleteHandover)
	}
}

func (r *router) registerPetShop(api *echo.Group) {
	g := api.Group("/petshop")
	g.GET("/items", r.petShop.ListItems)
	g.GET("/items/:id", r.petShop.GetItem)

	user := g.Group("/reservations", r.mw.Authenticate)
	{
		user.POST("", r.petShop.CreateReservation)
		user.GET("", r.petShop.ListMyReservations)
		user.GET("/:id", r.petShop.GetMyReservation)
		user.PUT("/:id/cancel", r.petShop.CancelReservation)
		user.GET("/:id/qr", r.petShop.HandoverQR)
	}

	mgr := g.Group("/manager", r.mw.Authenticate, r.mw.RequireModule(entity.ModulePetShop))
	{
		mgr.GET("/items", r.petShop.ListStoreItems)
		mgr.POST("/items", r.petShop.CreateItem)
		mgr.GET("/items/:id", r.petShop.GetStoreItem)
		mgr.PUT("/items/:id", r.petShop.UpdateItem)
		mgr.DELETE("/items/:id", r.petShop.DeleteItem)
		mgr.GET("/reservations", r.petShop.ListReservations)
		mgr.GET("/reservations/:id", r.petShop.GetReservation)
		mgr.GET("/reservations/:id/qr", r.petShop.HandoverQR)
		mgr.PUT("/reservations/:id/approve", r.petShop.ApproveReservation)
		mgr.PUT("/reservations/:id/reject", r.petShop.RejectReservation)
		mgr.PUT("/reservations/:id/payment", r.petShop.RecordPayment)
		mgr.PUT("/reservations/:id/handover", r.petShop.ScheduleHandover)
		mgr.POST("/reservations/:id/otp", r.petShop.RegenerateOTP)
		mgr.PUT("/reservations/:id/complete", r.petShop.CompleteHandover)
	}
}

func (r *router) registerVeterinary(api *echo.Group) {
	g := api.Group("/veterinary")
	g.GET("/stores/:storeId/slots", r.veterinary.AvailableSlots)

	user := g.Group("/appointments", r.mw.Authenticate)
	{
		user.POST("", r.veterinary.BookAppointment)
		user.GET("", r.veterinary.ListMyAppointments)
		user.GET("/:id", r.veterinary.GetMyAppointment)
		user.PUT("/:id/cancel", r.veterinary.CancelAppointment)
	}

	mgr := g.Group("/manager/appointments", r.mw.Authenticate, r.mw.RequireModule(entity.ModuleVeterinary))
	{
		mgr.GET("", r.veterinary.ListAppointments)
		mgr.GET("/:id", r.veterinary.GetAppointment)
		mgr.PUT("/:id/status", r.veterinary.UpdateStatus)
		mgr.PUT("/:id/consultation", r.veterinary.RecordConsultation)
		mgr.DELETE("/:id", r.veterinary.DeleteAppointment, r.mw.RequireModule(entity.ModuleVeterinary, entity.StaffAdmin, entity.StaffManager))
	}
}

func (r *router) registerPharmacy(api *echo.Group) {
	g := api.Group("/pharmacy")
	g.GET("/medicines", r.pharmacy.ListMedicines)
	g.GET("/medicines/:id", r.pharmacy.GetMedicine)

	user := g.Group("", r.mw.Authenticate)
	{
		user.POST("/prescriptions", r.pharmacy.UploadPrescription)
		user.GET("/prescriptions", r.pharmacy.ListMyPrescriptions)
		user.POST("/orders", r.pharmacy.PlaceOrder)
		user.GET("/orders", r.pharmacy.ListMyOrders)
		user.GET("/orders/:id", r.pharmacy.GetMyOrder)
	}

	mgr := g.Group("/manager", r.mw.Authenticate, r.mw.RequireModule(entity.ModulePharmacy))
	{
		mgr.GET("/medicines", r.pharmacy.ListManagedMedicines)
		mgr.POST("/medicines", r.pharmacy.SaveMedicine)
		mgr.PUT("/medicines/:id", r.pharmacy.UpdateMedicine)
		mgr.DELETE("/medicines/:id", r.pharmacy.DeleteMedicine)
		mgr.GET("/medicines/low-stock", r.pharmacy.ListLowStock)
		mgr.GET("/prescriptions/pending", r.pharmacy.ListPendingPrescriptions)
		mgr.PUT("/prescriptions/:id/review", r.pharmacy.ReviewPrescription)
		mgr.GET("/orders", r.pharmacy.ListOrders)
		mgr.PUT("/orders/:id/status", r.pharmacy.UpdateOrderStatus)
	}
}

func (r *router) registerRescue(api *echo.Group) {
	g := api.Group("/rescue")
	g.GET("/reports", r.rescue.ListReports)
	g.GET("/reports/nearby", r.rescue.Nearby)
	g.GET("/reports/:id", r.rescue.GetReport)

	user := g.Group("", r.mw.Authenticate)
	{
		user.POST("/reports", r.rescue.CreateReport)
		user.GET("/my-reports", r.rescue.ListMyReports)
	}

	staff := g.Group("/manager/reports", r.mw.Authenticate, r.mw.RequireModule(entity.ModuleRescue))
	{
		staff.PUT("/:id/status", r.rescue.UpdateStatus)
		staff.POST("/:id/notes", r.rescue.AddNote)
		staff.PUT("/:id/assign", r.rescue.AssignReport, r.mw.RequireModule(entity.ModuleRescue, entity.StaffAdmin, entity.StaffManager))
	}
}

func (r *router) registerShelter(api *echo.Group) {
	g := api.Group("/shelter", r.mw.Authenticate, r.mw.RequireModule(entity.ModuleShelter))
	{
		g.POST("/animals", r.shelter.Intake)
		g.GET("/animals", r.shelter.ListAnimals)
		g.GET("/animals/:id", r.shelter.GetAnimal)
		g.PUT("/animals/:id", r.shelter.UpdateAnimal)
		g.PUT("/animals/:id/kennel", r.shelter.AssignKennel)
		g.PUT("/animals/:id/status", r.shelter.UpdateStatus)
		g.POST("/animals/:id/transfer", r.shelter.TransferToAdoption, r.mw.RequireModule(entity.ModuleShelter, entity.StaffAdmin, entity.StaffManager))
	}
}

func (r *router) registerCare(api *echo.Group) {
	g := api.Group("/temporary-care")
	g.GET("/services", r.care.ListServices)
	g.GET("/services/:id", r.care.GetService)
	g.POST("/quote", r.care.Quote)

	user := g.Group("/bookings", r.mw.Authenticate)
	{
		user.POST("", r.care.CreateBooking)
		user.GET("", r.care.ListMyBookings)
		user.GET("/:id", r.care.GetMyBooking)
		user.POST("/:id/pay", r.care.PayAdvance)
		user.PUT("/:id/cancel", r.care.CancelBooking)
		user.POST("/:id/review", r.care.ReviewBooking)
	}

	mgr := g.Group("/manager", r.mw.Authenticate, r.mw.RequireModule(entity.ModuleTemporaryCare))
	{
		mgr.GET("/services", r.care.ListManagedServices)
		mgr.POST("/services", r.care.CreateService)
		mgr.PUT("/services/:id", r.care.UpdateService)
		mgr.DELETE("/services/:id", r.care.DeactivateService)
		mgr.GET("/bookings", r.care.ListBookings)
		mgr.GET("/bookings/:id", r.care.GetBooking)
		mgr.PUT("/bookings/:id/assign", r.care.AssignCaregiver)
		mgr.POST("/bookings/:id/drop-off/otp", r.care.GenerateDropOffOTP)
		mgr.POST("/bookings/:id/drop-off/verify", r.care.VerifyDropOff)
		mgr.POST("/bookings/:id/activities", r.care.LogActivity)
		mgr.POST("/bookings/:id/pickup/otp", r.care.GeneratePickupOTP)
		mgr.POST("/bookings/:id/pickup/verify", r.care.VerifyPickup)
	}
}

func (r *router) registerEcommerce(api *echo.Group) {
	g := api.Group("/ecommerce")
	g.GET("/products", r.ecommerce.ListProducts)
	g.GET("/products/:id", r.ecommerce.GetProduct)
	g.GET("/products/:id/reviews", r.ecommerce.ListReviews)
	g.POST("/products/:id/reviews", r.ecommerce.AddReview, r.mw.Authenticate)

	cart := g.Group("/cart", r.mw.Authenticate)
	{
		cart.GET("", r.ecommerce.GetCart)
		cart.POST("/items", r.ecommerce.AddToCart)
		cart.PUT("/items/:productId", r.ecommerce.UpdateCartItem)
		cart.DELETE("/items/:productId", r.ecommerce.RemoveFromCart)
		cart.DELETE("", r.ecommerce.ClearCart)
	}

	orders := g.Group("/orders", r.mw.Authenticate)
	{
		orders.POST("", r.ecommerce.Checkout)
		orders.GET("", r.ecommerce.ListMyOrders)
		orders.GET("/:id", r.ecommerce.GetMyOrder)
	}

	mgr := g.Group("/manager", r.mw.Authenticate, r.mw.RequireModule(entity.ModuleEcommerce))
	{
		mgr.GET("/products", r.ecommerce.ListManagedProducts)
		mgr.POST("/products", r.ecommerce.CreateProduct)
		mgr.PUT("/products/:id", r.ecommerce.UpdateProduct)
		mgr.DELETE("/products/:id", r.ecommerce.DeleteProduct)
		mgr.GET("/orders", r.ecommerce.ListOrders)
		mgr.PUT("/orders/:id/status", r.ecommerce.UpdateOrderStatus)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.test.TestPublicEndpoint)

		testGroup.Use(r.mw.Authenticate) // Apply bearer authentication middleware
		{
			testGroup.GET("/auth", r.test.TestAuthMiddleware)
		}
	}
}
