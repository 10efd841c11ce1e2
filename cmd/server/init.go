package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/config"
	marketmodels "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	registromodels "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/database"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Productos = "productos"
	global.MongoDB_ColNames.Tiendas = "tiendas"
	global.MongoDB_ColNames.Pedidos = "pedidos"
	global.MongoDB_ColNames.Inventarios = "inventarios"
	global.MongoDB_ColNames.Usuarios = "usuarios"

	// Các collection legacy từ registro hạt nhân
	global.MongoDB_ColNames.Ubicaciones = "ubicaciones"
	global.MongoDB_ColNames.TiposReactores = "tipos_reactores"
	global.MongoDB_ColNames.Reactores = "reactores"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator với các custom validator (no_xss, no_sql_injection, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DatabaseName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Productos), marketmodels.Producto{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tiendas), marketmodels.Tienda{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Pedidos), marketmodels.Pedido{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Inventarios), marketmodels.Inventario{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Usuarios), marketmodels.Usuario{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Reactores), registromodels.Reactor{})
}
