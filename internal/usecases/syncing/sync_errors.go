package syncing

import "errors"

// Erros fatais para a sincronização de uma empresa: interrompem a execução da
// empresa inteira, mas nunca o lote. Erros por campanha não ganham sentinela;
// são registrados e a execução segue para a próxima campanha.
var (
	ErrAccountNotFound    = errors.New("empresa sem conta vinculada no marketplace")
	ErrUserNotLinked      = errors.New("conta sem usuário autorizado no marketplace")
	ErrTokenUnavailable   = errors.New("não foi possível obter um token de acesso válido")
	ErrAdvertiserNotFound = errors.New("nenhum anunciante de Product Ads encontrado para o site da conta")
)
