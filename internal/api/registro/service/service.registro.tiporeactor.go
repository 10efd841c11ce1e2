package registrosvc

import (
	"context"
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/registro/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TipoReactorService xử lý logic tipo reactor, kèm join sang reactores.
type TipoReactorService struct {
	*basesvc.BaseServiceMongoImpl[models.TipoReactor]
	reactores basesvc.BaseServiceMongo[models.Reactor]
}

// NewTipoReactorService tạo TipoReactorService mới.
func NewTipoReactorService() (*TipoReactorService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TiposReactores)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.TiposReactores, common.ErrNotFound)
	}
	reactorColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reactores)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reactores, common.ErrNotFound)
	}
	return &TipoReactorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.TipoReactor](coll),
		reactores:            basesvc.NewBaseServiceMongo[models.Reactor](reactorColl),
	}, nil
}

// ReactoresPorTipo trả về các reactor có cùng tipo với tipo reactor id.
// Join theo giá trị field tipo, không phải theo reference id.
func (s *TipoReactorService) ReactoresPorTipo(ctx context.Context, id primitive.ObjectID) ([]models.Reactor, error) {
	tipoReactor, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.reactores.Find(ctx, bson.M{"tipo": tipoReactor.Tipo}, nil)
}
