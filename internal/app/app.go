// Package app wires configuration, infrastructure and application
// services into one container embedding programs can use.
package app

import (
	"fmt"

	appcatalog "github.com/ims/backend/internal/application/catalog"
	appfinance "github.com/ims/backend/internal/application/finance"
	apppartner "github.com/ims/backend/internal/application/partner"
	apptrade "github.com/ims/backend/internal/application/trade"
	"github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/infrastructure/event"
	"github.com/ims/backend/internal/infrastructure/logger"
	"github.com/ims/backend/internal/infrastructure/persistence"
	infraseq "github.com/ims/backend/internal/infrastructure/sequence"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the wired application services
type App struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *gorm.DB

	Customers          *apppartner.CustomerService
	CustomerGroups     *apppartner.CustomerGroupService
	CustomerCategories *apppartner.CustomerCategoryService
	Vendors            *apppartner.VendorService
	Warehouses         *apppartner.WarehouseService

	Products      *appcatalog.ProductService
	ProductGroups *appcatalog.ProductGroupService
	Units         *appcatalog.UnitOfMeasureService

	Taxes *appfinance.TaxService

	SalesOrders    *apptrade.SalesOrderService
	PurchaseOrders *apptrade.PurchaseOrderService
	DeliveryOrders *apptrade.DeliveryOrderService
	SalesReturns   *apptrade.SalesReturnService
}

// New builds the application from configuration
func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := persistence.Open(cfg.Database, logger.NewGormLogger(log))
	if err != nil {
		return nil, err
	}

	// repositories
	customers := persistence.NewCustomerRepository(db)
	contacts := persistence.NewCustomerContactRepository(db)
	customerGroups := persistence.NewCustomerGroupRepository(db)
	customerCategories := persistence.NewCustomerCategoryRepository(db)
	vendors := persistence.NewVendorRepository(db)
	warehouses := persistence.NewWarehouseRepository(db)
	products := persistence.NewProductRepository(db)
	productGroups := persistence.NewProductGroupRepository(db)
	units := persistence.NewUnitOfMeasureRepository(db)
	taxes := persistence.NewTaxRepository(db)
	salesOrders := persistence.NewSalesOrderRepository(db)
	salesItems := persistence.NewSalesOrderItemRepository(db)
	purchaseOrders := persistence.NewPurchaseOrderRepository(db)
	purchaseItems := persistence.NewPurchaseOrderItemRepository(db)
	deliveries := persistence.NewDeliveryOrderRepository(db)
	returns := persistence.NewSalesReturnRepository(db)

	numbers, err := newSequenceGenerator(cfg, db)
	if err != nil {
		return nil, err
	}

	rates := appfinance.NewTaxRateResolver(taxes)
	recalc := apptrade.NewRecalculator(salesOrders, salesItems, purchaseOrders, purchaseItems, rates)

	bus := event.NewInMemoryBus(log)
	bus.Subscribe(event.NewLoggingHandler(log))

	salesOrderSvc := apptrade.NewSalesOrderService(salesOrders, salesItems, deliveries, recalc, numbers)
	salesOrderSvc.SetEventPublisher(bus)
	purchaseOrderSvc := apptrade.NewPurchaseOrderService(purchaseOrders, purchaseItems, recalc, numbers)
	purchaseOrderSvc.SetEventPublisher(bus)

	return &App{
		Config: cfg,
		Log:    log,
		DB:     db,

		Customers:          apppartner.NewCustomerService(customers, contacts),
		CustomerGroups:     apppartner.NewCustomerGroupService(customerGroups, customers),
		CustomerCategories: apppartner.NewCustomerCategoryService(customerCategories, customers),
		Vendors:            apppartner.NewVendorService(vendors),
		Warehouses:         apppartner.NewWarehouseService(warehouses),

		Products:      appcatalog.NewProductService(products),
		ProductGroups: appcatalog.NewProductGroupService(productGroups, products),
		Units:         appcatalog.NewUnitOfMeasureService(units, products),

		Taxes: appfinance.NewTaxService(taxes, salesOrders),

		SalesOrders:    salesOrderSvc,
		PurchaseOrders: purchaseOrderSvc,
		DeliveryOrders: apptrade.NewDeliveryOrderService(deliveries, salesOrders, returns, numbers),
		SalesReturns:   apptrade.NewSalesReturnService(returns, deliveries, numbers),
	}, nil
}

// newSequenceGenerator picks the number generator from configuration
func newSequenceGenerator(cfg *config.Config, db *gorm.DB) (sequence.Generator, error) {
	switch cfg.Sequence.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return infraseq.NewRedisGenerator(client), nil
	case "", "scan":
		return infraseq.NewScanGenerator(db), nil
	case "timestamp":
		return infraseq.NewTimestampGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown sequence backend %q", cfg.Sequence.Backend)
	}
}

// Close flushes the logger and releases the database connection
func (a *App) Close() error {
	_ = a.Log.Sync()
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
