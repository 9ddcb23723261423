// Package ufe преобразует произвольные ошибки в дерево объяснений для пользователя.
//
// Ядро пакета — диспетчер преобразований: реестр конвертеров, наполняемый
// независимыми пакетами при старте, алгоритм выбора конвертера и
// модель данных дерева причин (Cause, UserFacingError).
//
// Порядок выбора при диспетчеризации ошибки:
//  1. ошибка сама реализует Explainer — используется её собственное объяснение,
//     реестр не просматривается;
//  2. первый подходящий конвертер реестра в порядке регистрации;
//  3. резервное объяснение Unclear: текст ошибки без подробностей.
//
// Реестр работает в две фазы: регистрация конвертеров (Register) и заморозка
// (Freeze либо первый вызов Dispatch/Explain). После заморозки Register паникует,
// а чтение не требует блокировок.
//
// Пакет не пишет логов и не создаёт исходных ошибок.
package ufe
