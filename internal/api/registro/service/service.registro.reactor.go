// Package registrosvc - Service registro hạt nhân legacy (ubicaciones,
// tipos_reactores, reactores) trên MongoDB.
package registrosvc

import (
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
)

// ReactorService xử lý logic reactor.
type ReactorService struct {
	*basesvc.BaseServiceMongoImpl[models.Reactor]
}

// NewReactorService tạo ReactorService mới.
func NewReactorService() (*ReactorService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reactores)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reactores, common.ErrNotFound)
	}
	return &ReactorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Reactor](coll),
	}, nil
}
