// Package password реализует хеширование и проверку паролей на bcrypt.
//
// Стоимость хеширования фиксирована (Cost = 10). CompareHash сравнивает
// хеш с паролем за постоянное время; CompareDummy выполняет такое же по
// стоимости сравнение, когда пользователь не найден.
package password

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Cost фиксированная стоимость bcrypt.
const Cost = 10

var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("mindora-dummy-password"), Cost)
	return h
})

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CompareDummy тратит на проверку столько же времени, сколько CompareHash,
// и всегда завершается неудачей.
func CompareDummy(externalPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(externalPassword))
}
