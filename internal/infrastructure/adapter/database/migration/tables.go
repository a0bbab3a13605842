package migration

import (
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
)

// Names of the bundled migrations, sortable by creation date
const (
	CreateTwoFactorAuthenticationsTableName = "2020_04_02_000000_create_two_factor_authentications_table"
	CreateWebAuthnCredentialsTableName      = "2022_07_01_000000_create_webauthn_credentials"
)

// CreateWebAuthnCredentialsTable creates the table of the credential model type,
// encoding the authenticatable relation with morphType
func CreateWebAuthnCredentialsTable(credentials *metamodel.Composer, morphType metamodel.MorphType) Factory {
	return composed(credentials, morphType)
}

// CreateTwoFactorAuthenticationsTable creates the table of the two factor model type,
// encoding the authenticatable relation with morphType
func CreateTwoFactorAuthenticationsTable(twoFactor *metamodel.Composer, morphType metamodel.MorphType) Factory {
	return composed(twoFactor, morphType)
}

func composed(composer *metamodel.Composer, morphType metamodel.MorphType) Factory {
	return func() Runnable {
		return composer.Migration().Morph(morphType, "")
	}
}

// RegisterBundled registers the bundled migrations on the connection of their model type
func RegisterBundled(m *Manager, twoFactor, credentials *metamodel.Composer, morphType metamodel.MorphType) error {
	if err := m.Register(CreateTwoFactorAuthenticationsTableName, twoFactor.Connection(),
		CreateTwoFactorAuthenticationsTable(twoFactor, morphType)); err != nil {
		return err
	}
	return m.Register(CreateWebAuthnCredentialsTableName, credentials.Connection(),
		CreateWebAuthnCredentialsTable(credentials, morphType))
}
