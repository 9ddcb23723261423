package i18n

// russian — переводы на русский язык, по областям.
var russian = map[string]string{
	// Файловая система.
	"File %q does not exist": "Файл %q не существует",
	"Check the path and make sure the file was not moved or deleted.":        "Проверьте путь и убедитесь, что файл не был перемещён или удалён.",
	"Access to %q is denied":                                                 "Доступ к %q запрещён",
	"Check the permissions of the file and of the user running the program.": "Проверьте права на файл и права пользователя, от имени которого запущена программа.",
	"%q is a directory":                          "%q является каталогом",
	"A regular file was expected at this path.":  "По этому пути ожидался обычный файл.",
	"Could not %s %q":                            "Не удалось выполнить %s для %q",
	"Could not %s %q to %q":                      "Не удалось выполнить %s %q в %q",
	"System call %s failed":                      "Системный вызов %s завершился ошибкой",

	// Сеть.
	"Request to %s timed out": "Истекло время ожидания запроса к %s",
	"The server did not answer in time. Check that it is reachable or increase the timeout.": "Сервер не ответил вовремя. Проверьте его доступность или увеличьте таймаут.",
	"Request to %s failed":                      "Запрос к %s завершился ошибкой",
	"Could not connect to %s":                   "Не удалось подключиться к %s",
	"Network operation %s on %s failed":         "Сетевая операция %s с %s завершилась ошибкой",
	"Network operation %s failed":               "Сетевая операция %s завершилась ошибкой",
	"The remote side did not respond in time.":  "Удалённая сторона не ответила вовремя.",
	"Host %q not found":                         "Узел %q не найден",
	"Check the host name and the DNS settings.": "Проверьте имя узла и настройки DNS.",
	"Resolving %q timed out":                    "Истекло время разрешения имени %q",
	"Could not resolve %q":                      "Не удалось разрешить имя %q",
	"The operation timed out":                   "Истекло время ожидания операции",
	"Increase the timeout or retry later.":      "Увеличьте таймаут или повторите попытку позже.",
	"The operation was canceled":                "Операция отменена",

	// JSON и YAML.
	"Invalid JSON at byte %s":     "Некорректный JSON в позиции %s",
	"Field %q has the wrong type": "Поле %q имеет неверный тип",
	"Value has the wrong type":    "Значение имеет неверный тип",
	"Expected %s, got JSON %s.":   "Ожидался тип %s, получен JSON %s.",
	"The YAML document does not match the expected structure": "YAML-документ не соответствует ожидаемой структуре",

	// JSON Schema.
	"The document does not match the schema": "Документ не соответствует схеме",
	"At %s: %s":                              "В %s: %s",
	"Schema keyword: %s":                     "Ключевое слово схемы: %s",
	"jsonschema validation failed with %s":   "документ не прошёл валидацию по схеме %s",
	"validation failed":                      "валидация не пройдена",
	"missing property %s":                    "отсутствует свойство %s",
	"missing properties %s":                  "отсутствуют свойства %s",
	"got %s, want %s":                        "получено %s, ожидается %s",
	"value must be %s":                       "значение должно быть %s",
	"value must be one of %s":                "значение должно быть одним из %s",
	"additional properties %s not allowed":   "дополнительные свойства %s не допускаются",
	"%s does not match pattern %s":           "%s не соответствует шаблону %s",
	"minimum: got %v, want %v":               "minimum: получено %v, ожидается не меньше %v",
	"maximum: got %v, want %v":               "maximum: получено %v, ожидается не больше %v",
	"minLength: got %d, want %d":             "minLength: получено %d, ожидается не меньше %d",
	"maxLength: got %d, want %d":             "maxLength: получено %d, ожидается не больше %d",
	"minItems: got %d, want %d":              "minItems: получено %d, ожидается не меньше %d",
	"maxItems: got %d, want %d":              "maxItems: получено %d, ожидается не больше %d",

	// База данных.
	"The requested record was not found":        "Запрошенная запись не найдена",
	"The database connection is already closed": "Соединение с базой данных уже закрыто",
	"The transaction is already finished":       "Транзакция уже завершена",
	"The transaction was committed or rolled back before this operation.": "Транзакция была зафиксирована или откачена до этой операции.",
	"The database connection is broken":                                   "Соединение с базой данных нарушено",
	"Check that the database server is running and retry.":                "Проверьте, что сервер базы данных запущен, и повторите попытку.",
	"SQL Server rejected the login":                                       "SQL Server отклонил вход",
	"Check the user name and password in the connection settings.":        "Проверьте имя пользователя и пароль в настройках подключения.",
	"SQL Server cannot open the database":                                 "SQL Server не может открыть базу данных",
	"Check that the database exists and the user has access to it.":       "Проверьте, что база данных существует и у пользователя есть к ней доступ.",
	"The query was chosen as a deadlock victim":                           "Запрос выбран жертвой взаимоблокировки",
	"Retry the operation.":                                                "Повторите операцию.",
	"A record with the same key already exists":                           "Запись с таким ключом уже существует",
	"A database object referenced by the query does not exist":            "Объект базы данных, на который ссылается запрос, не существует",
	"SQL Server error %s: %s":                                             "Ошибка SQL Server %s: %s",
	"Error %s, severity %s, state %s":                                     "Ошибка %s, уровень %s, состояние %s",
	", procedure %s, line %s":                                             ", процедура %s, строка %s",
	", server %s":                                                         ", сервер %s",

	// Документы.
	"Document %s is valid":                 "Документ %s корректен",
	"Document %s is invalid":               "Документ %s некорректен",
	"Could not parse %s":                   "Не удалось разобрать %s",
	"Syntax error on line %s":              "Синтаксическая ошибка в строке %s",
	"Fix the syntax and run the check again.": "Исправьте синтаксис и повторите проверку.",
	"Could not load the schema %s":         "Не удалось загрузить схему %s",

	// Команда explain.
	"No document to check":                                  "Нет документа для проверки",
	"Set UFE_INPUT to the path of a YAML or JSON document.": "Укажите в UFE_INPUT путь к документу YAML или JSON.",
	"Could not read the document %s":                        "Не удалось прочитать документ %s",
	"Check the UFE_INPUT setting.":                          "Проверьте значение UFE_INPUT.",
	"Document %s is not well-formed":                        "Документ %s содержит синтаксическую ошибку",
	"Could not check %s":                                    "Не удалось проверить %s",
	"Check the UFE_SCHEMA setting.":                         "Проверьте значение UFE_SCHEMA.",
	"Document %s does not match the schema":                 "Документ %s не соответствует схеме",

	// Команда db-check.
	"No database to check":                                "Нет базы данных для проверки",
	"Set UFE_DB_DSN to a SQL Server connection string.":   "Укажите в UFE_DB_DSN строку подключения SQL Server.",
	"The connection string is invalid":                    "Некорректная строка подключения",
	"The database check failed":                           "Проверка базы данных не пройдена",
	"Check UFE_DB_DSN and that the server is reachable.":  "Проверьте UFE_DB_DSN и доступность сервера.",
	"Connected to %s, database %s":                        "Подключение к %s установлено, база данных %s",

	// Запуск.
	"Unknown command %s":                                           "Неизвестная команда %s",
	"Run %s help to list the commands.":                            "Список команд: %s help.",
	"Could not load the configuration":                             "Не удалось загрузить конфигурацию",
	"The configuration is invalid":                                 "Некорректная конфигурация",
	"Check UFE_CONFIG_PATH and the UFE_* environment variables.":   "Проверьте UFE_CONFIG_PATH и переменные окружения UFE_*.",

	// Вывод.
	"Detailed information:": "Подробности:",
	"(no summary)":          "(нет описания)",
}
