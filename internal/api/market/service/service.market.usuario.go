package marketsvc

import (
	"context"
	"fmt"

	basesvc "github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/base/service"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/api/market/models"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/common"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// UsuarioService xử lý logic usuario.
type UsuarioService struct {
	*basesvc.BaseServiceMongoImpl[models.Usuario]
}

// NewUsuarioService tạo UsuarioService mới.
func NewUsuarioService() (*UsuarioService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Usuarios)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Usuarios, common.ErrNotFound)
	}
	return &UsuarioService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Usuario](coll),
	}, nil
}

// FindByEmail tìm usuario theo email đăng nhập.
func (s *UsuarioService) FindByEmail(ctx context.Context, email string) (models.Usuario, error) {
	return s.FindOne(ctx, bson.M{"email": email}, nil)
}
